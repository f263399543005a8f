// Package access decides, for a session and a requested view, whether the
// view is rendered or the client is redirected.
//
// The console is a strict two-tenant partition: admins live under /admin,
// customers under /customer, and unauthenticated clients may only see
// /login and /register. Decide is pure and safe to call from anywhere.
package access

import (
	"path"
	"strings"

	"github.com/me/agrirent/pkg/model"
)

// Logical view identifiers.
const (
	RootPath     = "/"
	LoginPath    = "/login"
	RegisterPath = "/register"
	AdminPath    = "/admin"
	CustomerPath = "/customer"
)

// Subviews within each scope. They are rendered by the console and used
// by the CLI to gate its commands.
const (
	AdminEquipmentPath = AdminPath + "/equipment"
	AdminRentalsPath   = AdminPath + "/rentals"
	AdminReportsPath   = AdminPath + "/reports"
	AdminAuditPath     = AdminPath + "/audit"

	CustomerBrowsePath    = CustomerPath + "/browse"
	CustomerRentalsPath   = CustomerPath + "/rentals"
	CustomerRecommendPath = CustomerPath + "/ai-recommend"
	CustomerChatPath      = CustomerPath + "/ai-chat"
)

// View is the category of a requested path.
type View int

const (
	ViewUnknown View = iota
	ViewRoot
	ViewLogin
	ViewRegister
	ViewAdmin
	ViewCustomer
)

func (v View) String() string {
	switch v {
	case ViewRoot:
		return "root"
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewAdmin:
		return "admin"
	case ViewCustomer:
		return "customer"
	default:
		return "unknown"
	}
}

// Classify maps a request path to its view category. The path is cleaned
// first, so "/admin/", "/admin/./x", and "/customer/../admin" classify by
// their canonical form. A prefix only matches on a segment boundary.
func Classify(p string) View {
	p = Clean(p)
	switch {
	case p == RootPath:
		return ViewRoot
	case p == LoginPath:
		return ViewLogin
	case p == RegisterPath:
		return ViewRegister
	case underPrefix(p, AdminPath):
		return ViewAdmin
	case underPrefix(p, CustomerPath):
		return ViewCustomer
	default:
		return ViewUnknown
	}
}

// Clean returns the canonical form of a request path.
func Clean(p string) string {
	if p == "" {
		return RootPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func underPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// Outcome is the kind of decision.
type Outcome int

const (
	// Render means the requested view is shown.
	Render Outcome = iota
	// Redirect means the client is sent to Decision.Target.
	Redirect
	// NotFound means the path is not a known view.
	NotFound
)

// Decision is the result of Decide.
type Decision struct {
	Outcome Outcome
	// Target is the redirect destination; empty unless Outcome is Redirect.
	Target string
}

// String renders the decision for logs and CLI output.
func (d Decision) String() string {
	switch d.Outcome {
	case Render:
		return "render"
	case Redirect:
		return "redirect " + d.Target
	default:
		return "not found"
	}
}

// IsRender reports whether the view is shown.
func (d Decision) IsRender() bool {
	return d.Outcome == Render
}

func render() Decision             { return Decision{Outcome: Render} }
func redirectTo(t string) Decision { return Decision{Outcome: Redirect, Target: t} }

// Decide returns the outcome for requesting path p with session sess.
//
// A session whose role is not a known variant counts as unauthenticated.
func Decide(sess model.Session, p string) Decision {
	role := sess.Role()

	switch Classify(p) {
	case ViewRoot:
		if role.Valid() {
			return redirectTo(role.Home())
		}
		return redirectTo(LoginPath)

	case ViewLogin, ViewRegister:
		if role.Valid() {
			return redirectTo(role.Home())
		}
		return render()

	case ViewAdmin:
		if role == model.RoleAdmin {
			return render()
		}
		return redirectTo(LoginPath)

	case ViewCustomer:
		if role == model.RoleCustomer {
			return render()
		}
		return redirectTo(LoginPath)

	default:
		return Decision{Outcome: NotFound}
	}
}
