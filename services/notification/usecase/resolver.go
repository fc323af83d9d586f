package usecase

import (
	"context"
	"fmt"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// ResolveNotifyingIdentity applies the role hierarchy: a super admin is
// notified through their own configuration, a company through the
// platform super admin, and everyone else through their owning company.
// An unresolvable identity is a configuration fault, not a user error.
func (u *NotificationUC) ResolveNotifyingIdentity(ctx context.Context, target *models.User) (*models.User, error) {
	switch target.Role {
	case models.RoleSuperAdmin:
		return target, nil
	case models.RoleCompany:
		admin, err := u.repo.GetSuperAdmin(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrNoGatewayUser, err)
		}
		return admin, nil
	default:
		if target.CompanyID == nil {
			return nil, fmt.Errorf("%w: user %s has no company", models.ErrNoGatewayUser, target.ID)
		}
		company, err := u.repo.GetUserByID(ctx, *target.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrNoGatewayUser, err)
		}
		return company, nil
	}
}

// activeGateway looks up the identity's gateway and checks it is usable.
func (u *NotificationUC) activeGateway(ctx context.Context, identity *models.User) (*models.EmailGateway, error) {
	gw, err := u.repo.GetGatewayByOwner(ctx, identity.ID, identity.Role == models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if !gw.IsActive {
		return nil, models.ErrGatewayDeactivated
	}
	return gw, nil
}
