package ui

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/me/agrirent/internal/api"
	"github.com/me/agrirent/internal/api/apitest"
	"github.com/me/agrirent/internal/logging"
	"github.com/me/agrirent/internal/session"
	"github.com/me/agrirent/pkg/model"
)

type testConsole struct {
	backend   *apitest.Backend
	gate      *session.Gate
	srv       *httptest.Server
	client    *http.Client
	tractor   model.Equipment
	harvester model.Equipment
}

func setupConsole(t *testing.T) *testConsole {
	t.Helper()

	b := apitest.New()
	b.IncludeName = true
	b.AddUser("Ada Admin", "ada", "secret", model.RoleAdmin)
	b.AddUser("Carl", "carl", "hunter2", model.RoleCustomer)
	tractor := b.AddEquipment("Tractor", 1500, true)
	harvester := b.AddEquipment("Harvester", 4000, false)
	apiURL := apitest.NewServer(t, b)

	logger := logging.Discard()
	gate := session.NewGate(session.NewMemoryStore(), logger)
	gate.Initialize(context.Background())

	console := New(gate, api.NewClient(apiURL, gate, 5*time.Second, logger), logger, Config{})
	srv := httptest.NewServer(console.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testConsole{backend: b, gate: gate, srv: srv, client: client, tractor: tractor, harvester: harvester}
}

func (tc *testConsole) loginAs(t *testing.T, username string, role model.Role) {
	t.Helper()
	if err := tc.gate.Login(context.Background(), tc.backend.TokenFor(username), username, role, ""); err != nil {
		t.Fatalf("gate login: %v", err)
	}
}

func (tc *testConsole) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := tc.client.Get(tc.srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp, readBody(t, resp)
}

func (tc *testConsole) post(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := tc.client.PostForm(tc.srv.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func expectRedirect(t *testing.T, resp *http.Response, target string) {
	t.Helper()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != target {
		t.Errorf("Location = %q, want %q", got, target)
	}
}

func TestGateRouting(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		role     model.Role
		path     string
		status   int
		location string
	}{
		{"anon root", "", model.RoleNone, "/", http.StatusSeeOther, "/login"},
		{"anon login", "", model.RoleNone, "/login", http.StatusOK, ""},
		{"anon register", "", model.RoleNone, "/register", http.StatusOK, ""},
		{"anon admin", "", model.RoleNone, "/admin", http.StatusSeeOther, "/login"},
		{"anon admin subview", "", model.RoleNone, "/admin/equipment", http.StatusSeeOther, "/login"},
		{"anon admin unknown subview", "", model.RoleNone, "/admin/nope", http.StatusSeeOther, "/login"},
		{"anon customer", "", model.RoleNone, "/customer", http.StatusSeeOther, "/login"},
		{"anon customer subview", "", model.RoleNone, "/customer/browse", http.StatusSeeOther, "/login"},
		{"anon unknown", "", model.RoleNone, "/nowhere", http.StatusNotFound, ""},

		{"admin root", "ada", model.RoleAdmin, "/", http.StatusSeeOther, "/admin"},
		{"admin login", "ada", model.RoleAdmin, "/login", http.StatusSeeOther, "/admin"},
		{"admin register", "ada", model.RoleAdmin, "/register", http.StatusSeeOther, "/admin"},
		{"admin overview", "ada", model.RoleAdmin, "/admin", http.StatusOK, ""},
		{"admin trailing slash", "ada", model.RoleAdmin, "/admin/", http.StatusOK, ""},
		{"admin equipment", "ada", model.RoleAdmin, "/admin/equipment", http.StatusOK, ""},
		{"admin rentals", "ada", model.RoleAdmin, "/admin/rentals", http.StatusOK, ""},
		{"admin reports", "ada", model.RoleAdmin, "/admin/reports", http.StatusOK, ""},
		{"admin audit", "ada", model.RoleAdmin, "/admin/audit", http.StatusOK, ""},
		{"admin unknown subview", "ada", model.RoleAdmin, "/admin/nope", http.StatusNotFound, ""},
		{"admin customer", "ada", model.RoleAdmin, "/customer", http.StatusSeeOther, "/login"},
		{"admin customer subview", "ada", model.RoleAdmin, "/customer/rentals", http.StatusSeeOther, "/login"},
		{"admin unknown", "ada", model.RoleAdmin, "/nowhere", http.StatusNotFound, ""},

		{"customer root", "carl", model.RoleCustomer, "/", http.StatusSeeOther, "/customer"},
		{"customer login", "carl", model.RoleCustomer, "/login", http.StatusSeeOther, "/customer"},
		{"customer register", "carl", model.RoleCustomer, "/register", http.StatusSeeOther, "/customer"},
		{"customer overview", "carl", model.RoleCustomer, "/customer", http.StatusOK, ""},
		{"customer browse", "carl", model.RoleCustomer, "/customer/browse", http.StatusOK, ""},
		{"customer rentals", "carl", model.RoleCustomer, "/customer/rentals", http.StatusOK, ""},
		{"customer recommend", "carl", model.RoleCustomer, "/customer/ai-recommend", http.StatusOK, ""},
		{"customer chat", "carl", model.RoleCustomer, "/customer/ai-chat", http.StatusOK, ""},
		{"customer admin", "carl", model.RoleCustomer, "/admin", http.StatusSeeOther, "/login"},
		{"customer admin subview", "carl", model.RoleCustomer, "/admin/audit", http.StatusSeeOther, "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := setupConsole(t)
			if tt.login != "" {
				tc.loginAs(t, tt.login, tt.role)
			}

			resp, _ := tc.get(t, tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("GET %s: status = %d, want %d", tt.path, resp.StatusCode, tt.status)
			}
			if tt.location != "" {
				if got := resp.Header.Get("Location"); got != tt.location {
					t.Errorf("GET %s: Location = %q, want %q", tt.path, got, tt.location)
				}
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	tc := setupConsole(t)
	resp, _ := tc.get(t, "/login")
	if id := resp.Header.Get("X-Request-ID"); !strings.HasPrefix(id, "req_") {
		t.Errorf("X-Request-ID = %q, want req_ prefix", id)
	}
}

func TestLoginPost(t *testing.T) {
	tc := setupConsole(t)

	resp, _ := tc.post(t, "/login", url.Values{"username": {"carl"}, "password": {"hunter2"}})
	expectRedirect(t, resp, "/customer")

	sess := tc.gate.Current()
	if !sess.IsAuthenticated() || sess.User.Username != "carl" || sess.Role() != model.RoleCustomer {
		t.Fatalf("session = %+v, want carl as customer", sess)
	}
	if sess.User.Name != "Carl" {
		t.Errorf("Name = %q, want Carl", sess.User.Name)
	}

	_, body := tc.get(t, "/customer")
	if !strings.Contains(body, "Welcome back, Carl") {
		t.Error("overview does not greet the user")
	}
}

func TestLoginPost_BadCredentials(t *testing.T) {
	tc := setupConsole(t)

	resp, _ := tc.post(t, "/login", url.Values{"username": {"carl"}, "password": {"wrong"}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	loc, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatalf("parse Location: %v", err)
	}
	if loc.Path != "/login" || loc.Query().Get("error") != "Invalid credentials" {
		t.Errorf("Location = %q, want /login with the backend message", loc)
	}
	if tc.gate.Current().IsAuthenticated() {
		t.Error("gate authenticated after failed login")
	}

	_, body := tc.get(t, loc.RequestURI())
	if !strings.Contains(body, "Invalid credentials") {
		t.Error("login page does not show the error")
	}
}

func TestLoginPost_MissingFields(t *testing.T) {
	tc := setupConsole(t)

	resp, _ := tc.post(t, "/login", url.Values{"username": {"carl"}})
	if resp.StatusCode != http.StatusSeeOther || !strings.HasPrefix(resp.Header.Get("Location"), "/login?error=") {
		t.Errorf("got %d %q, want redirect back to login with error", resp.StatusCode, resp.Header.Get("Location"))
	}
	for _, r := range tc.backend.Requests() {
		if r.Path == "/api/login" {
			t.Error("backend was called with incomplete credentials")
		}
	}
}

func TestLoginPost_AlreadyAuthenticated(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "ada", model.RoleAdmin)

	resp, _ := tc.post(t, "/login", url.Values{"username": {"carl"}, "password": {"hunter2"}})
	expectRedirect(t, resp, "/admin")

	if got := tc.gate.Current().User.Username; got != "ada" {
		t.Errorf("session user = %q, want ada unchanged", got)
	}
}

func TestRegisterPost(t *testing.T) {
	tc := setupConsole(t)

	resp, _ := tc.post(t, "/register", url.Values{
		"name":             {"Dana"},
		"username":         {"dana"},
		"password":         {"pw"},
		"confirm_password": {"pw"},
		"role":             {"customer"},
	})
	expectRedirect(t, resp, "/login")
	if tc.gate.Current().IsAuthenticated() {
		t.Error("registration must not log the user in")
	}

	_, body := tc.get(t, "/login")
	if !strings.Contains(body, "Registration successful") {
		t.Error("login page does not show the registration flash")
	}
	_, body = tc.get(t, "/login")
	if strings.Contains(body, "Registration successful") {
		t.Error("flash shown twice")
	}

	resp, _ = tc.post(t, "/login", url.Values{"username": {"dana"}, "password": {"pw"}})
	expectRedirect(t, resp, "/customer")
}

func TestRegisterPost_Errors(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			"password mismatch",
			url.Values{"name": {"Dana"}, "username": {"dana"}, "password": {"a"}, "confirm_password": {"b"}},
			"Passwords do not match",
		},
		{
			"duplicate username",
			url.Values{"name": {"Carl"}, "username": {"carl"}, "password": {"a"}, "confirm_password": {"a"}},
			"Username already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := setupConsole(t)
			resp, _ := tc.post(t, "/register", tt.form)
			if resp.StatusCode != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", resp.StatusCode)
			}
			loc, _ := url.Parse(resp.Header.Get("Location"))
			if loc.Path != "/register" || loc.Query().Get("error") != tt.message {
				t.Errorf("Location = %q, want /register with %q", loc, tt.message)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "ada", model.RoleAdmin)

	resp, _ := tc.post(t, "/logout", nil)
	expectRedirect(t, resp, "/login")
	if tc.gate.Current().IsAuthenticated() {
		t.Fatal("gate still authenticated after logout")
	}

	resp, _ = tc.get(t, "/admin")
	expectRedirect(t, resp, "/login")

	// Logging out again is harmless.
	resp, _ = tc.get(t, "/logout")
	expectRedirect(t, resp, "/login")
}

func TestCrossOriginPostRejected(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
		status int
	}{
		{"cross-site fetch", "Sec-Fetch-Site", "cross-site", http.StatusForbidden},
		{"same-site fetch", "Sec-Fetch-Site", "same-site", http.StatusForbidden},
		{"foreign origin", "Origin", "http://evil.example", http.StatusForbidden},
		{"same-origin fetch", "Sec-Fetch-Site", "same-origin", http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := setupConsole(t)
			form := url.Values{"username": {"carl"}, "password": {"hunter2"}}
			req, err := http.NewRequest(http.MethodPost, tc.srv.URL+"/login", strings.NewReader(form.Encode()))
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set(tt.header, tt.value)

			resp, err := tc.client.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if authed := tc.gate.Current().IsAuthenticated(); authed != (tt.status == http.StatusSeeOther) {
				t.Errorf("authenticated = %v after %s", authed, tt.name)
			}
		})
	}
}

func TestRejectedTokenLogsOut(t *testing.T) {
	tc := setupConsole(t)
	if err := tc.gate.Login(context.Background(), "forged", "ada", model.RoleAdmin, ""); err != nil {
		t.Fatal(err)
	}

	resp, _ := tc.get(t, "/admin/equipment")
	expectRedirect(t, resp, "/login")
	if tc.gate.Current().IsAuthenticated() {
		t.Fatal("session survived a rejected token")
	}

	_, body := tc.get(t, "/login")
	if !strings.Contains(body, "session has expired") {
		t.Error("login page does not explain the logout")
	}
}

func TestUnknownSection(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "ada", model.RoleAdmin)

	resp, body := tc.get(t, "/admin/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if !strings.Contains(body, "This section does not exist.") {
		t.Error("missing not-found message")
	}

	resp, _ = tc.post(t, "/admin/equipment/abc/activate", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("invalid id: status = %d, want 404", resp.StatusCode)
	}
}

func TestAdminEquipment(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "ada", model.RoleAdmin)

	_, body := tc.get(t, "/admin/equipment")
	for _, want := range []string{"Tractor", "Harvester", "₹1500.00", "Inactive"} {
		if !strings.Contains(body, want) {
			t.Errorf("equipment page missing %q", want)
		}
	}

	resp, _ := tc.post(t, "/admin/equipment", url.Values{"name": {"Plough"}, "price": {"800"}})
	expectRedirect(t, resp, "/admin/equipment")
	_, body = tc.get(t, "/admin/equipment")
	if !strings.Contains(body, "Plough") || !strings.Contains(body, "Equipment added") {
		t.Error("added equipment or flash not shown")
	}

	resp, _ = tc.post(t, "/admin/equipment/"+strconv.FormatInt(tc.harvester.ID, 10)+"/activate", nil)
	expectRedirect(t, resp, "/admin/equipment")
	_, body = tc.get(t, "/admin/equipment")
	if !strings.Contains(body, "Equipment activated") {
		t.Error("activation flash not shown")
	}
	if strings.Contains(body, "Inactive") {
		t.Error("harvester still inactive")
	}
}

func TestAdminEquipment_InvalidPrice(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "ada", model.RoleAdmin)

	resp, _ := tc.post(t, "/admin/equipment", url.Values{"name": {"Plough"}, "price": {"free"}})
	expectRedirect(t, resp, "/admin/equipment")

	_, body := tc.get(t, "/admin/equipment")
	if !strings.Contains(body, "price must be positive") {
		t.Error("validation error not flashed")
	}
	for _, r := range tc.backend.Requests() {
		if r.Method == http.MethodPost && r.Path == "/api/equipment" {
			t.Error("invalid equipment reached the backend")
		}
	}
}

func TestAdminRentalsReportsAudit(t *testing.T) {
	tc := setupConsole(t)

	tc.loginAs(t, "carl", model.RoleCustomer)
	tc.post(t, "/customer/browse/rent", url.Values{"equipment_id": {strconv.FormatInt(tc.tractor.ID, 10)}, "days": {"2"}})
	tc.gate.Logout(context.Background())
	tc.loginAs(t, "ada", model.RoleAdmin)

	rentals := tc.backend.Rentals()
	if len(rentals) != 1 {
		t.Fatalf("rentals = %d, want 1", len(rentals))
	}

	_, body := tc.get(t, "/admin/rentals")
	if !strings.Contains(body, "carl") || !strings.Contains(body, "Mark returned") {
		t.Error("rental not listed as returnable")
	}

	resp, _ := tc.post(t, "/admin/rentals/"+strconv.FormatInt(rentals[0].ID, 10)+"/return", nil)
	expectRedirect(t, resp, "/admin/rentals")
	if got := tc.backend.Rentals()[0].Status; got != model.RentalStatusReturned {
		t.Errorf("status = %q, want returned", got)
	}

	_, body = tc.get(t, "/admin/rentals?status=rented")
	if strings.Contains(body, "Mark returned") {
		t.Error("status filter kept a returned rental")
	}

	_, body = tc.get(t, "/admin/reports")
	if !strings.Contains(body, "₹3000.00") {
		t.Error("revenue report missing the rental total")
	}

	_, body = tc.get(t, "/admin/audit")
	if !strings.Contains(body, "Rented Tractor for 2 days") {
		t.Error("audit log missing the rental")
	}

	_, body = tc.get(t, "/admin")
	if !strings.Contains(body, "₹3000.00") {
		t.Error("overview missing revenue")
	}
}

func TestCustomerRentFlow(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "carl", model.RoleCustomer)

	_, body := tc.get(t, "/customer/browse")
	if !strings.Contains(body, "Tractor") || strings.Contains(body, "Harvester") {
		t.Error("browse must list only active equipment")
	}
	_, body = tc.get(t, "/customer/browse?q=harv")
	if strings.Contains(body, "Tractor") {
		t.Error("search did not filter")
	}

	resp, _ := tc.post(t, "/customer/browse/rent", url.Values{
		"equipment_id": {strconv.FormatInt(tc.tractor.ID, 10)},
		"days":         {"3"},
	})
	expectRedirect(t, resp, "/customer/rentals")

	_, body = tc.get(t, "/customer/rentals")
	for _, want := range []string{"Rental created", "Tractor", "₹4500.00"} {
		if !strings.Contains(body, want) {
			t.Errorf("rentals page missing %q", want)
		}
	}

	rental := tc.backend.Rentals()[0]
	resp, body = tc.post(t, "/customer/rentals/contract", url.Values{"rental_id": {strconv.FormatInt(rental.ID, 10)}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("contract: status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "sandbox") || !strings.Contains(body, "Rental Agreement") {
		t.Error("contract not rendered in a sandboxed frame")
	}
	if strings.Contains(body, "<h1>Rental Agreement") {
		t.Error("contract HTML was not escaped into srcdoc")
	}
}

func TestCustomerRent_InvalidDays(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "carl", model.RoleCustomer)

	resp, _ := tc.post(t, "/customer/browse/rent", url.Values{
		"equipment_id": {strconv.FormatInt(tc.tractor.ID, 10)},
		"days":         {"0"},
	})
	expectRedirect(t, resp, "/customer/browse")
	if n := len(tc.backend.Rentals()); n != 0 {
		t.Errorf("rentals = %d, want 0", n)
	}
}

func TestCustomerContract_UnknownRental(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "carl", model.RoleCustomer)

	resp, _ := tc.post(t, "/customer/rentals/contract", url.Values{"rental_id": {"999"}})
	expectRedirect(t, resp, "/customer/rentals")
	_, body := tc.get(t, "/customer/rentals")
	if !strings.Contains(body, "Rental not found") {
		t.Error("missing not-found flash")
	}
}

func TestCustomerAI(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "carl", model.RoleCustomer)

	resp, body := tc.post(t, "/customer/ai-recommend", url.Values{"cropType": {"Wheat"}, "soilType": {"Loam"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recommend: status = %d", resp.StatusCode)
	}
	for _, want := range []string{"Tractor", "Suited to Wheat on Loam soil", "₹4500.00"} {
		if !strings.Contains(body, want) {
			t.Errorf("recommendations missing %q", want)
		}
	}

	resp, body = tc.post(t, "/customer/ai-chat", url.Values{"question": {"What should I rent?"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chat: status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, tc.backend.ChatReply) {
		t.Error("chat answer not shown")
	}

	resp, _ = tc.post(t, "/customer/ai-chat", url.Values{"question": {"  "}})
	expectRedirect(t, resp, "/customer/ai-chat")
}

func TestNavMarksCurrentPage(t *testing.T) {
	tc := setupConsole(t)
	tc.loginAs(t, "carl", model.RoleCustomer)

	_, body := tc.get(t, "/customer/rentals")
	if !strings.Contains(body, `href="/customer/rentals" class="border-green-600`) {
		t.Error("current nav item not highlighted")
	}
	if strings.Contains(body, "/admin/equipment") {
		t.Error("customer nav shows admin links")
	}
}

func TestRootHandlerHasNoPage(t *testing.T) {
	console := New(session.NewGate(session.NewMemoryStore(), logging.Discard()), nil, logging.Discard(), Config{})

	rec := httptest.NewRecorder()
	console.HandleRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("Location = %q, want no redirect", loc)
	}
}

func TestFlashRoundTrip(t *testing.T) {
	console := New(session.NewGate(session.NewMemoryStore(), logging.Discard()), nil, logging.Discard(), Config{})

	tests := []struct {
		name string
		kind string
		msg  string
	}{
		{"plain", "success", "Equipment added"},
		{"separator in message", "error", "invalid rental: days | must be at least 1"},
		{"empty message", "success", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := httptest.NewRecorder()
			console.setFlash(set, tt.kind, tt.msg)

			req := httptest.NewRequest(http.MethodGet, "/login", nil)
			for _, c := range set.Result().Cookies() {
				req.AddCookie(c)
			}
			got := console.popFlash(httptest.NewRecorder(), req)
			if got == nil {
				t.Fatal("flash not read back")
			}
			if got.Kind != tt.kind || got.Message != tt.msg {
				t.Errorf("flash = %+v, want {%s %s}", *got, tt.kind, tt.msg)
			}
		})
	}
}

func TestFlashMalformedCookie(t *testing.T) {
	console := New(session.NewGate(session.NewMemoryStore(), logging.Discard()), nil, logging.Discard(), Config{})

	for _, value := range []string{"%%%", "bm9zZXBhcmF0b3I"} { // second is base64 "noseparator"
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: FlashCookieName, Value: value})
		if got := console.popFlash(httptest.NewRecorder(), req); got != nil {
			t.Errorf("popFlash(%q) = %+v, want nil", value, *got)
		}
	}
}
