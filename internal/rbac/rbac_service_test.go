package rbac

import (
	"context"
	"errors"
	"testing"

	"go-timeoff/internal/domain"
	"go-timeoff/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	perms       []RolePermissionRow
	inheritance []RoleInheritanceRow
	err         error
}

func (f *fakeRepo) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	return f.perms, f.err
}

func (f *fakeRepo) GetRoleInheritance(ctx context.Context) ([]RoleInheritanceRow, error) {
	return f.inheritance, f.err
}

func defaultRepo() *fakeRepo {
	return &fakeRepo{
		perms: []RolePermissionRow{
			{Role: "staff", Resource: ResourceLeaveRequest, Action: ActionRead},
			{Role: "staff", Resource: ResourceForm, Action: ActionSubmit},
			{Role: "admin", Resource: ResourceLeaveRequest, Action: ActionReview},
			{Role: "admin", Resource: ResourceRecipient, Action: ActionManage},
		},
		inheritance: []RoleInheritanceRow{{Role: "admin", Parent: "staff"}},
	}
}

func newTestService(t *testing.T, repo Repository) Service {
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	svc := NewService(repo, enforcer)
	require.NoError(t, svc.LoadPolicy(context.Background()))
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t, defaultRepo())

	cases := []struct {
		role, resource, action string
		allowed                bool
	}{
		{"admin", ResourceLeaveRequest, ActionReview, true},
		{"admin", ResourceLeaveRequest, ActionRead, true},
		{"staff", ResourceLeaveRequest, ActionRead, true},
		{"staff", ResourceLeaveRequest, ActionReview, false},
		{"staff", ResourceRecipient, ActionManage, false},
		{"", ResourceLeaveRequest, ActionRead, false},
	}

	for _, tc := range cases {
		allowed, err := svc.Enforce(domain.EnforceRequest{Role: tc.role, Resource: tc.resource, Action: tc.action})
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s:%s", tc.role, tc.resource, tc.action)
	}
}

func TestRBACService_Permissions(t *testing.T) {
	svc := newTestService(t, defaultRepo())

	perms, err := svc.Permissions("admin")
	require.NoError(t, err)
	assert.Contains(t, perms, domain.PermissionResponse{Resource: ResourceForm, Action: ActionSubmit})
	assert.Contains(t, perms, domain.PermissionResponse{Resource: ResourceRecipient, Action: ActionManage})

	staff, err := svc.Permissions("staff")
	require.NoError(t, err)
	assert.Len(t, staff, 2)
}

func TestRBACService_LoadPolicyError(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc := NewService(&fakeRepo{err: errors.New("db down")}, enforcer)

	assert.Error(t, svc.LoadPolicy(context.Background()))
}
