package domain

import "testing"

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleStaff.Valid() {
		t.Error("known roles should be valid")
	}
	if Role("root").Valid() {
		t.Error("unknown role should be invalid")
	}
	if Role("").Valid() {
		t.Error("empty role should be invalid")
	}
}

func TestCan_AdminHoldsEverything(t *testing.T) {
	perms := []Permission{
		PermCatalogWrite,
		PermArticlesWrite,
		PermPortfolioWrite,
		PermOrdersManage,
		PermInquiriesManage,
		PermUsersManage,
		PermReportsView,
	}
	for _, p := range perms {
		if !Can(RoleAdmin, p) {
			t.Errorf("admin should hold %s", p)
		}
	}
}

func TestCan_StaffCannotManageUsers(t *testing.T) {
	if Can(RoleStaff, PermUsersManage) {
		t.Error("staff should not hold users.manage")
	}
	if !Can(RoleStaff, PermCatalogWrite) {
		t.Error("staff should hold catalog.write")
	}
	if !Can(RoleStaff, PermOrdersManage) {
		t.Error("staff should hold orders.manage")
	}
}

func TestCan_UnknownRole(t *testing.T) {
	if Can(Role("ghost"), PermCatalogWrite) {
		t.Error("unknown role should hold nothing")
	}
	if Can(Role(""), PermReportsView) {
		t.Error("empty role should hold nothing")
	}
}
