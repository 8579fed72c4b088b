package navigation

import (
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/core/guard"
	"docai-portal/internal/pkg/dto/responses"
)

var titles = map[models.Role]string{
	models.RolePatient: "Patient Portal",
	models.RoleDoctor:  "Doctor Portal",
	models.RoleAdmin:   "Admin Portal",
}

var items = map[models.Role][]responses.MenuItem{
	models.RolePatient: {
		{To: "/patient/dashboard", Label: "Dashboard"},
		{To: "/patient/upload", Label: "Upload Report"},
		{To: "/patient/history", Label: "History"},
		{To: "/patient/comparison", Label: "Report Comparison"},
		{To: "/patient/profile", Label: "Profile"},
	},
	models.RoleDoctor: {
		{To: "/doctor/dashboard", Label: "Dashboard"},
		{To: "/doctor/patients", Label: "Patient List"},
		{To: "/doctor/review-requests", Label: "Review Requests"},
	},
	models.RoleAdmin: {
		{To: "/admin/dashboard", Label: "Dashboard"},
		{To: "/admin/doctors", Label: "Doctor List"},
		{To: "/admin/patients", Label: "Patient List"},
		{To: "/admin/settings", Label: "Settings"},
	},
}

// reviewRequestsPath carries the pending-count badge on the doctor menu.
const reviewRequestsPath = "/doctor/review-requests"

// MenuFor builds the sidebar of a role. pendingReviews is shown as a badge
// on the doctor's review requests entry when positive.
func MenuFor(role models.Role, pendingReviews int) responses.Menu {
	menuItems := make([]responses.MenuItem, 0, len(items[role]))
	for _, item := range items[role] {
		if item.To == reviewRequestsPath && pendingReviews > 0 {
			badge := pendingReviews
			item.Badge = &badge
		}
		menuItems = append(menuItems, item)
	}
	return responses.Menu{
		Role:        role,
		Title:       titles[role],
		Items:       menuItems,
		LogoutRoute: guard.LoginPath(role),
	}
}
