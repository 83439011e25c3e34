package domain

// Role names an admin-panel access level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Permission names one guarded admin capability.
type Permission string

const (
	PermCatalogWrite    Permission = "catalog.write"
	PermArticlesWrite   Permission = "articles.write"
	PermPortfolioWrite  Permission = "portfolio.write"
	PermOrdersManage    Permission = "orders.manage"
	PermInquiriesManage Permission = "inquiries.manage"
	PermUsersManage     Permission = "users.manage"
	PermReportsView     Permission = "reports.view"
)

// rolePermissions is the lookup table behind Can. Staff handle day-to-day
// content and customer traffic; only admins manage accounts.
var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermCatalogWrite:    true,
		PermArticlesWrite:   true,
		PermPortfolioWrite:  true,
		PermOrdersManage:    true,
		PermInquiriesManage: true,
		PermUsersManage:     true,
		PermReportsView:     true,
	},
	RoleStaff: {
		PermCatalogWrite:    true,
		PermArticlesWrite:   true,
		PermPortfolioWrite:  true,
		PermOrdersManage:    true,
		PermInquiriesManage: true,
		PermReportsView:     true,
	},
}

// Can reports whether the given role holds the given permission.
// Unknown roles hold nothing.
func Can(role Role, perm Permission) bool {
	return rolePermissions[role][perm]
}
