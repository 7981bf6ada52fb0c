package domain

// Role is one of the four fixed user roles.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleFinance        Role = "finance"
	RoleProjectManager Role = "project_manager"
	RoleSiteEngineer   Role = "site_engineer"
)

// User is the logged-in account. There is at most one at a time.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
}

// RolePermissions is the static role → permission mapping. Authorization is
// coarse and static; there is no resource-level scoping.
var RolePermissions = map[Role][]string{
	RoleAdmin:          {"view_all", "create", "edit", "delete", "approve", "financial"},
	RoleFinance:        {"view_financial", "create_invoice", "approve_payment", "billing"},
	RoleProjectManager: {"view_projects", "create_project", "edit_project", "manage_boq", "daily_reports"},
	RoleSiteEngineer:   {"view_project", "submit_daily_report", "view_expenses"},
}

// DefaultUser returns the fixed demo user for a role. Logging in is a role
// selection with no credential check.
func DefaultUser(role Role) (User, bool) {
	users := map[Role]User{
		RoleAdmin: {
			ID:         "admin_1",
			Name:       "Admin User",
			Email:      "admin@erpcivi.com",
			Role:       RoleAdmin,
			Phone:      "+91 9876543210",
			Department: "Administration",
		},
		RoleFinance: {
			ID:         "finance_1",
			Name:       "Finance Manager",
			Email:      "finance@erpcivi.com",
			Role:       RoleFinance,
			Phone:      "+91 9876543211",
			Department: "Finance",
		},
		RoleProjectManager: {
			ID:         "pm_1",
			Name:       "Project Manager",
			Email:      "pm@erpcivi.com",
			Role:       RoleProjectManager,
			Phone:      "+91 9876543212",
			Department: "Project Management",
		},
		RoleSiteEngineer: {
			ID:         "se_1",
			Name:       "Site Engineer",
			Email:      "engineer@erpcivi.com",
			Role:       RoleSiteEngineer,
			Phone:      "+91 9876543213",
			Department: "Site Operations",
		},
	}

	u, ok := users[role]
	return u, ok
}
