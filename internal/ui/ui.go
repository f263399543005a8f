// Package ui serves the browser console. Every page is a view of the
// session gate: the gate middleware decides, per request, whether the
// view renders or where the browser is sent instead.
package ui

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/me/agrirent/internal/access"
	"github.com/me/agrirent/internal/api"
	"github.com/me/agrirent/internal/session"
	"github.com/me/agrirent/pkg/model"
)

// Backend is the part of api.Client the console calls.
type Backend interface {
	Register(ctx context.Context, req model.RegisterRequest) (*api.Message, error)
	Login(ctx context.Context, username, password string) (*model.LoginResponse, error)
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
	ListAllEquipment(ctx context.Context) ([]model.Equipment, error)
	AddEquipment(ctx context.Context, eq model.NewEquipment) (*api.Message, error)
	ActivateEquipment(ctx context.Context, id int64) (*api.Message, error)
	DeactivateEquipment(ctx context.Context, id int64) (*api.Message, error)
	CreateRental(ctx context.Context, r model.NewRental) (*api.Message, error)
	MyRentals(ctx context.Context) ([]model.Rental, error)
	AllRentals(ctx context.Context) ([]model.Rental, error)
	ReturnRental(ctx context.Context, id int64) (*api.Message, error)
	RevenueReport(ctx context.Context) ([]model.RevenueRow, error)
	AuditLogs(ctx context.Context) ([]model.AuditLog, error)
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	Recommend(ctx context.Context, req model.RecommendRequest) (*model.RecommendResponse, error)
	Chat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error)
	Contract(ctx context.Context, req model.ContractRequest) (*model.ContractResponse, error)
}

var _ Backend = (*api.Client)(nil)

// UI handles the web console.
type UI struct {
	gate    *session.Gate
	backend Backend
	logger  *slog.Logger
	secure  bool // Use secure cookies (HTTPS)
	now     func() time.Time
}

// Config holds UI configuration.
type Config struct {
	Secure bool // Use secure cookies for HTTPS
}

// New creates the console. The gate must already be initialized.
func New(gate *session.Gate, backend Backend, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		gate:    gate,
		backend: backend,
		logger:  logger.With("component", "ui"),
		secure:  cfg.Secure,
		now:     time.Now,
	}
}

type navItem struct {
	Label string
	Path  string
}

var adminNav = []navItem{
	{"Overview", access.AdminPath},
	{"Equipment", access.AdminEquipmentPath},
	{"Rentals", access.AdminRentalsPath},
	{"Reports", access.AdminReportsPath},
	{"Audit Logs", access.AdminAuditPath},
}

var customerNav = []navItem{
	{"Overview", access.CustomerPath},
	{"Browse Equipment", access.CustomerBrowsePath},
	{"My Rentals", access.CustomerRentalsPath},
	{"AI Recommendations", access.CustomerRecommendPath},
	{"AI Assistant", access.CustomerChatPath},
}

// page fills the fields the layout needs.
func (ui *UI) page(w http.ResponseWriter, r *http.Request, title string) map[string]any {
	sess := SessionFromContext(r.Context())
	data := map[string]any{
		"Title":     title + " - AgriRent",
		"Session":   sess,
		"Path":      r.URL.Path,
		"Flash":     ui.popFlash(w, r),
		"RequestID": RequestIDFromContext(r.Context()),
	}
	switch sess.Role() {
	case model.RoleAdmin:
		data["Nav"] = adminNav
	case model.RoleCustomer:
		data["Nav"] = customerNav
	}
	return data
}

func (ui *UI) render(w http.ResponseWriter, name string, data map[string]any) {
	ui.renderStatus(w, http.StatusOK, name, data)
}

func (ui *UI) renderStatus(w http.ResponseWriter, status int, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, name, data); err != nil {
		ui.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (ui *UI) renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	data := ui.page(w, r, "Not Found")
	data["Message"] = message
	ui.renderStatus(w, http.StatusNotFound, "error", data)
}

// backendError turns a failed backend call into a flash message and a
// redirect. A rejected credential ends the session.
func (ui *UI) backendError(w http.ResponseWriter, r *http.Request, err error, back string) {
	if errors.Is(err, api.ErrUnauthorized) {
		ui.logger.Warn("backend rejected session token, logging out", "path", r.URL.Path)
		ui.gate.Logout(r.Context())
		ui.setFlash(w, "error", "Your session has expired. Please log in again.")
		http.Redirect(w, r, access.LoginPath, http.StatusSeeOther)
		return
	}
	ui.logger.Error("backend call failed", "path", r.URL.Path, "error", err,
		"request_id", RequestIDFromContext(r.Context()))
	ui.setFlash(w, "error", errorMessage(err, "Request failed. Please try again."))
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// errorMessage prefers the backend's own message.
func errorMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return fallback
}

func withError(path, msg string) string {
	return path + "?" + url.Values{"error": {msg}}.Encode()
}
