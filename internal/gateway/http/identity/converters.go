package identity

import (
	"fmt"

	"fleetdesk/internal/entities"
)

type meResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// toDomain отклоняет неизвестные роли: молчаливый даунгрейд или
// апгрейд роли здесь недопустим.
func toDomain(resp *meResponse) (*entities.User, error) {
	role := entities.UserRoleType(resp.Role)
	switch role {
	case entities.RoleAdmin, entities.RoleSales, entities.RoleFinance, entities.RoleBroker, entities.RoleCustomer:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, resp.Role)
	}

	return &entities.User{
		ID:          resp.ID,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		Role:        role,
	}, nil
}
