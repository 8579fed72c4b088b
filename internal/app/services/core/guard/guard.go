// Package guard decides whether a page may render for the current session.
// The decisions are pure so the HTTP layer and the CLI share them.
package guard

import (
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"fmt"
)

// State is the slice of the session a guard looks at.
type State struct {
	Loading bool
	User    *models.User
}

func (s State) Authenticated() bool {
	return s.User != nil
}

type Outcome int

const (
	Render Outcome = iota
	Loading
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case Loading:
		return "loading"
	case Redirect:
		return "redirect"
	default:
		return "render"
	}
}

type Decision struct {
	Outcome Outcome
	Target  string
}

func render() Decision {
	return Decision{Outcome: Render}
}

func redirectTo(target string) Decision {
	return Decision{Outcome: Redirect, Target: target}
}

func LoginPath(role models.Role) string {
	return fmt.Sprintf(constvars.PathLoginFormat, role)
}

func DashboardPath(role models.Role) string {
	return fmt.Sprintf(constvars.PathDashboardFormat, role)
}

// Protected lets only users of requiredRole through. Guests go to the
// role's login page, users of another role go to their own dashboard.
func Protected(state State, requiredRole models.Role) Decision {
	if state.Loading {
		return Decision{Outcome: Loading}
	}
	if !state.Authenticated() {
		return redirectTo(LoginPath(requiredRole))
	}
	if state.User.Role != requiredRole {
		return redirectTo(DashboardPath(state.User.Role))
	}
	return render()
}

// GuestOnly keeps logged-in users away from login and register pages.
func GuestOnly(state State) Decision {
	if state.Loading {
		return Decision{Outcome: Loading}
	}
	if state.Authenticated() {
		return redirectTo(DashboardPath(state.User.Role))
	}
	return render()
}
