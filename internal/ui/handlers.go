package ui

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/me/agrirent/internal/access"
	"github.com/me/agrirent/internal/api"
	"github.com/me/agrirent/internal/session"
	"github.com/me/agrirent/pkg/model"
)

// HandleRoot has no page of its own. The gate redirects "/" for every
// session, so reaching it means the access table no longer does.
func (ui *UI) HandleRoot(w http.ResponseWriter, r *http.Request) {
	ui.logger.Warn("root rendered without a redirect", "path", r.URL.Path)
	ui.renderNotFound(w, r, "Page not found")
}

// HandleUnknownSection renders a 404 inside the role's dashboard for
// subpaths that have no page.
func (ui *UI) HandleUnknownSection(w http.ResponseWriter, r *http.Request) {
	ui.renderNotFound(w, r, "This section does not exist.")
}

// --- Auth ---

// HandleLogin renders the login page.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	data := ui.page(w, r, "Login")
	data["Error"] = r.URL.Query().Get("error")
	ui.render(w, "login", data)
}

// HandleLoginPost authenticates against the backend and opens the session.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, withError(access.LoginPath, "Invalid request"), http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Redirect(w, r, withError(access.LoginPath, "Username and password required"), http.StatusSeeOther)
		return
	}

	resp, err := ui.backend.Login(r.Context(), username, password)
	if err != nil {
		ui.logger.Warn("login failed", "username", username, "error", err)
		http.Redirect(w, r, withError(access.LoginPath, errorMessage(err, "Login failed. Please try again.")), http.StatusSeeOther)
		return
	}

	role := model.ParseRole(resp.Role)
	if err := ui.gate.Login(r.Context(), resp.Token, resp.Username, role, resp.Name); err != nil {
		if errors.Is(err, session.ErrInvalidLogin) {
			ui.logger.Warn("backend returned an unusable session", "username", resp.Username, "role", resp.Role)
		}
		http.Redirect(w, r, withError(access.LoginPath, "Login failed. Please try again."), http.StatusSeeOther)
		return
	}

	ui.logger.Info("user logged in", "username", resp.Username, "role", role.String())
	http.Redirect(w, r, role.Home(), http.StatusSeeOther)
}

// HandleRegister renders the registration page.
func (ui *UI) HandleRegister(w http.ResponseWriter, r *http.Request) {
	data := ui.page(w, r, "Register")
	data["Error"] = r.URL.Query().Get("error")
	ui.render(w, "register", data)
}

// HandleRegisterPost creates the account and sends the user to login.
func (ui *UI) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, withError(access.RegisterPath, "Invalid request"), http.StatusSeeOther)
		return
	}

	if r.FormValue("password") != r.FormValue("confirm_password") {
		http.Redirect(w, r, withError(access.RegisterPath, "Passwords do not match"), http.StatusSeeOther)
		return
	}

	req := model.RegisterRequest{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
	}
	if _, err := ui.backend.Register(r.Context(), req); err != nil {
		ui.logger.Warn("registration failed", "username", req.Username, "error", err)
		http.Redirect(w, r, withError(access.RegisterPath, errorMessage(err, "Registration failed. Please try again.")), http.StatusSeeOther)
		return
	}

	ui.logger.Info("user registered", "username", req.Username)
	ui.setFlash(w, "success", "Registration successful. Please log in.")
	http.Redirect(w, r, access.LoginPath, http.StatusSeeOther)
}

// HandleLogout clears the session and redirects to login.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess := ui.gate.Current(); sess.IsAuthenticated() {
		ui.logger.Info("user logged out", "username", sess.User.Username)
	}
	ui.gate.Logout(r.Context())
	http.Redirect(w, r, access.LoginPath, http.StatusSeeOther)
}

// --- Admin ---

// HandleAdminOverview renders the admin dashboard numbers.
func (ui *UI) HandleAdminOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := ui.backend.DashboardStats(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	data := ui.page(w, r, "Overview")
	data["Stats"] = stats
	ui.render(w, "admin/overview", data)
}

// HandleAdminEquipment lists all equipment with activate/deactivate actions.
func (ui *UI) HandleAdminEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := ui.backend.ListAllEquipment(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	data := ui.page(w, r, "Equipment")
	data["Equipment"] = items
	ui.render(w, "admin/equipment", data)
}

// HandleAdminEquipmentAdd processes the add-equipment form.
func (ui *UI) HandleAdminEquipmentAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.backendError(w, r, err, access.AdminEquipmentPath)
		return
	}
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	eq := model.NewEquipment{Name: strings.TrimSpace(r.FormValue("name")), Price: price}

	msg, err := ui.backend.AddEquipment(r.Context(), eq)
	if err != nil {
		ui.backendError(w, r, err, access.AdminEquipmentPath)
		return
	}
	ui.setFlash(w, "success", msg.Message)
	http.Redirect(w, r, access.AdminEquipmentPath, http.StatusSeeOther)
}

// HandleAdminEquipmentToggle activates or deactivates an item.
func (ui *UI) HandleAdminEquipmentToggle(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ui.pathID(w, r)
		if !ok {
			return
		}
		toggle := ui.backend.DeactivateEquipment
		if active {
			toggle = ui.backend.ActivateEquipment
		}
		msg, err := toggle(r.Context(), id)
		if err != nil {
			ui.backendError(w, r, err, access.AdminEquipmentPath)
			return
		}
		ui.setFlash(w, "success", msg.Message)
		http.Redirect(w, r, access.AdminEquipmentPath, http.StatusSeeOther)
	}
}

// HandleAdminRentals lists every rental, optionally filtered by status.
func (ui *UI) HandleAdminRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := ui.backend.AllRentals(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	status := model.RentalStatus(r.URL.Query().Get("status"))
	data := ui.page(w, r, "Rentals")
	data["Rentals"] = model.FilterRentals(rentals, status)
	data["Status"] = string(status)
	ui.render(w, "admin/rentals", data)
}

// HandleAdminRentalReturn marks a rental returned.
func (ui *UI) HandleAdminRentalReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}
	msg, err := ui.backend.ReturnRental(r.Context(), id)
	if err != nil {
		ui.backendError(w, r, err, access.AdminRentalsPath)
		return
	}
	ui.setFlash(w, "success", msg.Message)
	http.Redirect(w, r, access.AdminRentalsPath, http.StatusSeeOther)
}

// HandleAdminReports renders the revenue report.
func (ui *UI) HandleAdminReports(w http.ResponseWriter, r *http.Request) {
	rows, err := ui.backend.RevenueReport(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	data := ui.page(w, r, "Reports")
	data["Rows"] = rows
	data["Total"] = model.RevenueTotal(rows)
	ui.render(w, "admin/reports", data)
}

// HandleAdminAudit renders the audit trail.
func (ui *UI) HandleAdminAudit(w http.ResponseWriter, r *http.Request) {
	logs, err := ui.backend.AuditLogs(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	data := ui.page(w, r, "Audit Logs")
	data["Logs"] = logs
	ui.render(w, "admin/audit", data)
}

// --- Customer ---

// HandleCustomerOverview renders the customer's summary and recent rentals.
func (ui *UI) HandleCustomerOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := ui.backend.DashboardStats(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	rentals, err := ui.backend.MyRentals(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	if len(rentals) > 5 {
		rentals = rentals[:5]
	}
	data := ui.page(w, r, "Overview")
	data["Stats"] = stats
	data["Rentals"] = rentals
	ui.render(w, "customer/overview", data)
}

// HandleCustomerBrowse lists rentable equipment.
func (ui *UI) HandleCustomerBrowse(w http.ResponseWriter, r *http.Request) {
	items, err := ui.backend.ListEquipment(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q != "" {
		filtered := items[:0:0]
		for _, eq := range items {
			if strings.Contains(strings.ToLower(eq.Name), q) {
				filtered = append(filtered, eq)
			}
		}
		items = filtered
	}
	data := ui.page(w, r, "Browse Equipment")
	data["Equipment"] = items
	data["Query"] = q
	ui.render(w, "customer/browse", data)
}

// HandleCustomerRent processes the rent form.
func (ui *UI) HandleCustomerRent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.backendError(w, r, err, access.CustomerBrowsePath)
		return
	}
	id, _ := strconv.ParseInt(r.FormValue("equipment_id"), 10, 64)
	days, _ := strconv.Atoi(r.FormValue("days"))

	msg, err := ui.backend.CreateRental(r.Context(), model.NewRental{EquipmentID: id, Days: days})
	if err != nil {
		ui.backendError(w, r, err, access.CustomerBrowsePath)
		return
	}
	ui.setFlash(w, "success", msg.Message)
	http.Redirect(w, r, access.CustomerRentalsPath, http.StatusSeeOther)
}

// HandleCustomerRentals lists the customer's rentals.
func (ui *UI) HandleCustomerRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := ui.backend.MyRentals(r.Context())
	if err != nil {
		ui.pageError(w, r, err)
		return
	}
	status := model.RentalStatus(r.URL.Query().Get("status"))
	data := ui.page(w, r, "My Rentals")
	data["Rentals"] = model.FilterRentals(rentals, status)
	data["Status"] = string(status)
	ui.render(w, "customer/rentals", data)
}

// HandleCustomerContract drafts a contract for one of the customer's rentals.
func (ui *UI) HandleCustomerContract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.backendError(w, r, err, access.CustomerRentalsPath)
		return
	}
	id, _ := strconv.ParseInt(r.FormValue("rental_id"), 10, 64)

	rentals, err := ui.backend.MyRentals(r.Context())
	if err != nil {
		ui.backendError(w, r, err, access.CustomerRentalsPath)
		return
	}
	var rental *model.Rental
	for i := range rentals {
		if rentals[i].ID == id {
			rental = &rentals[i]
		}
	}
	if rental == nil {
		ui.setFlash(w, "error", "Rental not found")
		http.Redirect(w, r, access.CustomerRentalsPath, http.StatusSeeOther)
		return
	}

	var rate float64
	if rental.Days > 0 {
		rate = rental.Total / float64(rental.Days)
	}
	sess := SessionFromContext(r.Context())
	resp, err := ui.backend.Contract(r.Context(), model.ContractRequest{
		CustomerName:  sess.User.DisplayName(),
		EquipmentName: rental.EquipmentName,
		Days:          rental.Days,
		StartDate:     ui.now().Format("2006-01-02"),
		DailyRate:     rate,
		TotalCost:     rental.Total,
	})
	if err != nil {
		ui.backendError(w, r, err, access.CustomerRentalsPath)
		return
	}

	data := ui.page(w, r, "Rental Contract")
	data["Rental"] = rental
	data["Contract"] = resp
	ui.render(w, "customer/contract", data)
}

// HandleCustomerRecommend renders the farm profile form.
func (ui *UI) HandleCustomerRecommend(w http.ResponseWriter, r *http.Request) {
	data := ui.page(w, r, "AI Recommendations")
	data["Form"] = model.RecommendRequest{Season: model.SeasonFor(ui.now())}
	ui.render(w, "customer/recommend", data)
}

// recommendation pairs a suggestion with its price against the inventory.
type recommendation struct {
	model.Recommendation
	Cost   float64
	Priced bool
}

// HandleCustomerRecommendPost asks the backend for recommendations.
func (ui *UI) HandleCustomerRecommendPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.backendError(w, r, err, access.CustomerRecommendPath)
		return
	}
	req := model.RecommendRequest{
		FarmSize: r.FormValue("farmSize"),
		CropType: r.FormValue("cropType"),
		Season:   r.FormValue("season"),
		Budget:   r.FormValue("budget"),
		SoilType: r.FormValue("soilType"),
	}
	if req.Season == "" {
		req.Season = model.SeasonFor(ui.now())
	}

	rentals, err := ui.backend.MyRentals(r.Context())
	if err != nil {
		ui.backendError(w, r, err, access.CustomerRecommendPath)
		return
	}
	for _, rent := range rentals {
		req.PreviousRentals = append(req.PreviousRentals, rent.EquipmentName)
	}

	resp, err := ui.backend.Recommend(r.Context(), req)
	if err != nil {
		ui.backendError(w, r, err, access.CustomerRecommendPath)
		return
	}
	items, err := ui.backend.ListEquipment(r.Context())
	if err != nil {
		ui.backendError(w, r, err, access.CustomerRecommendPath)
		return
	}

	recs := make([]recommendation, 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		cost, ok := rec.EstimatedCost(items)
		recs = append(recs, recommendation{Recommendation: rec, Cost: cost, Priced: ok})
	}

	data := ui.page(w, r, "AI Recommendations")
	data["Form"] = req
	data["Result"] = resp
	data["Recommendations"] = recs
	ui.render(w, "customer/recommend", data)
}

var quickQuestions = []string{
	"What equipment do you have for wheat farming?",
	"How much does a tractor cost per day?",
	"What's the difference between a harvester and a thresher?",
	"What equipment is best for small farms?",
}

// HandleCustomerChat renders the assistant page.
func (ui *UI) HandleCustomerChat(w http.ResponseWriter, r *http.Request) {
	data := ui.page(w, r, "AI Assistant")
	data["QuickQuestions"] = quickQuestions
	ui.render(w, "customer/chat", data)
}

// HandleCustomerChatPost sends one question with the inventory as context.
func (ui *UI) HandleCustomerChatPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.backendError(w, r, err, access.CustomerChatPath)
		return
	}
	question := strings.TrimSpace(r.FormValue("question"))
	if question == "" {
		http.Redirect(w, r, access.CustomerChatPath, http.StatusSeeOther)
		return
	}

	items, err := ui.backend.ListEquipment(r.Context())
	if err != nil {
		ui.backendError(w, r, err, access.CustomerChatPath)
		return
	}
	sess := SessionFromContext(r.Context())
	resp, err := ui.backend.Chat(r.Context(), model.ChatRequest{
		Question: question,
		Context: model.ChatContext{
			Equipment: items,
			UserType:  sess.Role().String(),
			Season:    model.SeasonFor(ui.now()),
		},
	})
	if err != nil {
		ui.backendError(w, r, err, access.CustomerChatPath)
		return
	}

	data := ui.page(w, r, "AI Assistant")
	data["QuickQuestions"] = quickQuestions
	data["Question"] = question
	data["Answer"] = resp.Response
	ui.render(w, "customer/chat", data)
}

// --- helpers ---

// pageError handles a failed read for a GET page. The flash is shown on
// the scope's overview, or inline when the overview itself failed.
func (ui *UI) pageError(w http.ResponseWriter, r *http.Request, err error) {
	home := SessionFromContext(r.Context()).Role().Home()
	if r.URL.Path != home || errors.Is(err, api.ErrUnauthorized) {
		ui.backendError(w, r, err, home)
		return
	}

	ui.logger.Error("backend call failed", "path", r.URL.Path, "error", err,
		"request_id", RequestIDFromContext(r.Context()))
	data := ui.page(w, r, "Error")
	data["Message"] = errorMessage(err, "The backend is unavailable.")
	ui.renderStatus(w, http.StatusBadGateway, "error", data)
}

func (ui *UI) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		ui.renderNotFound(w, r, fmt.Sprintf("Invalid id %q", chi.URLParam(r, "id")))
		return 0, false
	}
	return id, true
}
