package entities

// User приходит из внешнего identity provider, у нас не хранится.
type User struct {
	ID          string
	Email       string
	DisplayName string
	Role        UserRoleType
}

type UserRoleType string

const (
	RoleAdmin    UserRoleType = "admin"
	RoleSales    UserRoleType = "sales"
	RoleFinance  UserRoleType = "finance"
	RoleBroker   UserRoleType = "broker"
	RoleCustomer UserRoleType = "customer"
)

func (r UserRoleType) String() string {
	return string(r)
}

// SeesAllRecords - роли дилерского центра видят все записи,
// брокеры и клиенты только свои.
func (r UserRoleType) SeesAllRecords() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleFinance:
		return true
	default:
		return false
	}
}
