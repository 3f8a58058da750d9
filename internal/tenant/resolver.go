package tenant

import (
	"context"
	"fmt"

	"go-timeoff/internal/auth"
)

type VerdictKind int

const (
	VerdictAllowed VerdictKind = iota + 1
	VerdictRedirect
	VerdictNotFound
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictAllowed:
		return "allowed"
	case VerdictRedirect:
		return "redirect"
	case VerdictNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type Verdict struct {
	Kind         VerdictKind
	Organization *Organization
	Profile      *Profile
	RedirectTo   string
}

func Allowed(org *Organization, profile *Profile) Verdict {
	return Verdict{Kind: VerdictAllowed, Organization: org, Profile: profile}
}

func Redirect(to string) Verdict {
	return Verdict{Kind: VerdictRedirect, RedirectTo: to}
}

func NotFound() Verdict {
	return Verdict{Kind: VerdictNotFound}
}

// Lookups return (nil, nil) when the row does not exist; errors are reserved
// for infrastructure failures.
//
//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type OrganizationFinder interface {
	FindOrganizationBySlug(ctx context.Context, slug string) (*Organization, error)
	FindOrganizationByID(ctx context.Context, id string) (*Organization, error)
}

type ProfileFinder interface {
	FindProfileByID(ctx context.Context, id string) (*Profile, error)
}

type Resolver interface {
	ResolveAccess(ctx context.Context, principal *auth.Principal, slug string) (Verdict, error)
}

type resolver struct {
	orgs     OrganizationFinder
	profiles ProfileFinder
}

func NewResolver(orgs OrganizationFinder, profiles ProfileFinder) Resolver {
	return &resolver{orgs: orgs, profiles: profiles}
}

// ResolveAccess decides whether principal may open the organization at slug.
// A member of another tenant is sent to their own dashboard instead of being
// told whether slug exists.
func (r *resolver) ResolveAccess(ctx context.Context, principal *auth.Principal, slug string) (Verdict, error) {
	if principal == nil || principal.ID == "" {
		return Redirect(LoginPath), nil
	}

	profile, err := r.profiles.FindProfileByID(ctx, principal.ID)
	if err != nil {
		return Verdict{}, fmt.Errorf("find profile: %w", err)
	}
	if profile == nil {
		return Redirect(LoginPath), nil
	}

	org, err := r.orgs.FindOrganizationBySlug(ctx, slug)
	if err != nil {
		return Verdict{}, fmt.Errorf("find organization by slug: %w", err)
	}
	if org == nil {
		return NotFound(), nil
	}

	if !profile.BelongsTo(org.ID) {
		if profile.OrganizationID != nil && *profile.OrganizationID != "" {
			own, err := r.orgs.FindOrganizationByID(ctx, *profile.OrganizationID)
			if err != nil {
				return Verdict{}, fmt.Errorf("find own organization: %w", err)
			}
			if own != nil && own.Slug != "" {
				return Redirect(DashboardPath(own.Slug)), nil
			}
		}
		return Redirect(LoginPath), nil
	}

	return Allowed(org, profile), nil
}
