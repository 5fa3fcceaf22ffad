package models

type UserRole string

const (
	RoleMerchant   UserRole = "MERCHANT"
	RoleAccountant UserRole = "ACCOUNTANT"
)

// Valid reports whether the role is one of the two known roles.
func (r UserRole) Valid() bool {
	return r == RoleMerchant || r == RoleAccountant
}

// DisplayName: الاسم الظاهر في الواجهة حسب الدور
func (r UserRole) DisplayName() string {
	if r == RoleAccountant {
		return "المحاسب"
	}
	return "التاجر"
}
