package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// ToggleSecurityCode flips the OTP requirement on the target account.
// Company accounts can only be toggled by the super admin; employee
// accounts only by the company that owns them.
func (u *AuthUC) ToggleSecurityCode(ctx context.Context, actorID uuid.UUID, actorRole models.Role, targetID uuid.UUID, enabled bool) (bool, error) {
	target, err := u.authRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return false, err
	}

	switch target.Role {
	case models.RoleCompany:
		if actorRole != models.RoleSuperAdmin {
			return false, models.ErrForbidden
		}
	case models.RoleEmployee:
		if actorRole != models.RoleCompany {
			return false, models.ErrForbidden
		}
		if target.CompanyID == nil || *target.CompanyID != actorID {
			return false, models.ErrNotCompanyMember
		}
	default:
		if actorID != targetID {
			return false, models.ErrForbidden
		}
	}

	if err := u.authRepo.UpdateSecurityCode(ctx, targetID, enabled); err != nil {
		return false, err
	}

	return enabled, nil
}
