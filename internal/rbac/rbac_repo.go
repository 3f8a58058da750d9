package rbac

import (
	"context"

	"gorm.io/gorm"
)

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type RoleInheritanceRow struct {
	Role   string
	Parent string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
	GetRoleInheritance(ctx context.Context) ([]RoleInheritanceRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role, resource, action").
		Order("role, resource, action").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRoleInheritance(ctx context.Context) ([]RoleInheritanceRow, error) {
	var rows []RoleInheritanceRow
	err := r.db.WithContext(ctx).
		Table("role_inheritance").
		Select("role, parent").
		Scan(&rows).Error
	return rows, err
}
