package access

import (
	"testing"

	"github.com/me/agrirent/pkg/model"
)

var (
	anonymous = model.Session{}
	admin     = model.NewSession("tok-a", "root", model.RoleAdmin, "Root")
	customer  = model.NewSession("tok123", "alice", model.RoleCustomer, "Alice A")
)

func TestDecide_Table(t *testing.T) {
	type row struct {
		path      string
		anonymous Decision
		admin     Decision
		customer  Decision
	}
	rows := []row{
		{"/", redirectTo("/login"), redirectTo("/admin"), redirectTo("/customer")},
		{"/login", render(), redirectTo("/admin"), redirectTo("/customer")},
		{"/register", render(), redirectTo("/admin"), redirectTo("/customer")},
		{"/admin/equipment", redirectTo("/login"), render(), redirectTo("/login")},
		{"/customer/browse", redirectTo("/login"), redirectTo("/login"), render()},
	}

	sessions := []struct {
		name string
		sess model.Session
		pick func(row) Decision
	}{
		{"anonymous", anonymous, func(r row) Decision { return r.anonymous }},
		{"admin", admin, func(r row) Decision { return r.admin }},
		{"customer", customer, func(r row) Decision { return r.customer }},
	}

	for _, r := range rows {
		for _, s := range sessions {
			t.Run(s.name+r.path, func(t *testing.T) {
				got := Decide(s.sess, r.path)
				if want := s.pick(r); got != want {
					t.Errorf("Decide(%s, %q) = %v, want %v", s.name, r.path, got, want)
				}
			})
		}
	}
}

func TestDecide_ScopeRoots(t *testing.T) {
	if got := Decide(admin, "/admin"); !got.IsRender() {
		t.Errorf("admin /admin = %v, want render", got)
	}
	if got := Decide(customer, "/customer"); !got.IsRender() {
		t.Errorf("customer /customer = %v, want render", got)
	}
	if got := Decide(customer, "/admin"); got != redirectTo("/login") {
		t.Errorf("customer /admin = %v, want redirect /login", got)
	}
}

func TestDecide_Scenario(t *testing.T) {
	if got := Decide(customer, "/admin/equipment"); got != redirectTo("/login") {
		t.Errorf("got %v, want redirect /login", got)
	}
	if got := Decide(customer, "/customer/browse"); got != render() {
		t.Errorf("got %v, want render", got)
	}
	if got := Decide(model.Session{}, "/"); got != redirectTo("/login") {
		t.Errorf("got %v, want redirect /login", got)
	}
}

func TestDecide_UnknownRoleIsUnauthenticated(t *testing.T) {
	odd := model.Session{Token: "tok", User: &model.User{Username: "x", Role: model.Role(9)}}
	for _, p := range []string{"/", "/login", "/register", "/admin/x", "/customer/x"} {
		if got, want := Decide(odd, p), Decide(anonymous, p); got != want {
			t.Errorf("%s: got %v, want %v", p, got, want)
		}
	}
}

func TestDecide_NotFound(t *testing.T) {
	for _, p := range []string{"/administrator", "/customers", "/static/app.css", "/loginx"} {
		if got := Decide(admin, p); got.Outcome != NotFound {
			t.Errorf("Decide(admin, %q) = %v, want not found", p, got)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want View
	}{
		{"", ViewRoot},
		{"/", ViewRoot},
		{"/login", ViewLogin},
		{"/login/", ViewLogin},
		{"register", ViewRegister},
		{"/admin", ViewAdmin},
		{"/admin/", ViewAdmin},
		{"/admin/reports", ViewAdmin},
		{"/customer/ai-recommend", ViewCustomer},
		{"/customer/../admin/audit", ViewAdmin},
		{"/admin/../login", ViewLogin},
		{"/administrator", ViewUnknown},
		{"/unknown", ViewUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDecision_String(t *testing.T) {
	if got := redirectTo("/login").String(); got != "redirect /login" {
		t.Errorf("String() = %q", got)
	}
	if got := render().String(); got != "render" {
		t.Errorf("String() = %q", got)
	}
	if got := (Decision{Outcome: NotFound}).String(); got != "not found" {
		t.Errorf("String() = %q", got)
	}
}
