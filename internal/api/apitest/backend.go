// Package apitest provides an in-process fake of the rental backend for
// tests of the API client and both front ends.
package apitest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/me/agrirent/internal/token"
	"github.com/me/agrirent/pkg/model"
)

// Secret signs every token the fake issues.
const Secret = "apitest-secret"

type user struct {
	name     string
	username string
	password string // sha256 hex
	role     string
}

// Request is one call recorded by the fake.
type Request struct {
	Method        string
	Path          string
	Authorization string
}

// Backend is a fake backend holding all state in memory.
type Backend struct {
	// IncludeName adds the user's display name to login responses. The
	// real backend omits it.
	IncludeName bool
	// ChatReply is returned by /ai/chat.
	ChatReply string

	mu        sync.Mutex
	users     map[string]*user
	equipment []model.Equipment
	rentals   []model.Rental
	audit     []model.AuditLog
	requests  []Request
	nextID    int64
	now       func() time.Time
}

// New returns an empty backend.
func New() *Backend {
	return &Backend{
		ChatReply: "Use a rotavator before sowing.",
		users:     make(map[string]*user),
		now:       time.Now,
	}
}

// NewServer starts b behind an httptest server and returns the API base
// URL (ending in /api). The server is closed with the test.
func NewServer(t testing.TB, b *Backend) string {
	t.Helper()
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func hashPassword(p string) string {
	sum := sha256.Sum256([]byte(p))
	return hex.EncodeToString(sum[:])
}

// AddUser registers an account directly.
func (b *Backend) AddUser(name, username, password string, role model.Role) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[username] = &user{name: name, username: username, password: hashPassword(password), role: role.String()}
}

// AddEquipment stocks an item and returns it.
func (b *Backend) AddEquipment(name string, price float64, active bool) model.Equipment {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	eq := model.Equipment{ID: b.nextID, Name: name, Price: price, IsActive: active}
	b.equipment = append(b.equipment, eq)
	return eq
}

// TokenFor issues a valid token for an existing user.
func (b *Backend) TokenFor(username string) string {
	b.mu.Lock()
	u := b.users[username]
	b.mu.Unlock()
	if u == nil {
		return ""
	}
	tok, _ := token.Issue([]byte(Secret), u.username, u.role, 24*time.Hour)
	return tok
}

// Requests returns the calls seen so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// Rentals returns a copy of the rental table.
func (b *Backend) Rentals() []model.Rental {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Rental(nil), b.rentals...)
}

// Handler returns the HTTP handler serving /api/*.
func (b *Backend) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", b.handleRegister)
		r.Post("/login", b.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(b.requireToken)

			r.Get("/equipment", b.handleListEquipment)
			r.Get("/rentals/my", b.handleMyRentals)
			r.Post("/rentals", b.handleCreateRental)
			r.Put("/rentals/{id}/return", b.handleReturnRental)
			r.Get("/stats/dashboard", b.handleStats)
			r.Post("/ai/recommend", b.handleRecommend)
			r.Post("/ai/chat", b.handleChat)
			r.Post("/ai/contract", b.handleContract)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/equipment/all", b.handleListAllEquipment)
				r.Post("/equipment", b.handleAddEquipment)
				r.Put("/equipment/{id}/activate", b.handleSetActive(true))
				r.Put("/equipment/{id}/deactivate", b.handleSetActive(false))
				r.Get("/rentals", b.handleAllRentals)
				r.Get("/reports/revenue", b.handleRevenue)
				r.Get("/audit-logs", b.handleAuditLogs)
			})
		})
	})
	return r
}

// --- middleware ---

type ctxKey int

const (
	ctxUser ctxKey = iota
	ctxRole
)

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
		})
		b.mu.Unlock()
		w.Header().Set("X-Request-ID", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			writeMessage(w, http.StatusUnauthorized, "Token is missing")
			return
		}
		raw = strings.TrimPrefix(raw, "Bearer ")
		claims, err := token.Verify([]byte(Secret), raw)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Token is invalid")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUser, claims.Username)
		ctx = context.WithValue(ctx, ctxRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role(r) != model.RoleAdmin.String() {
			writeMessage(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func username(r *http.Request) string {
	s, _ := r.Context().Value(ctxUser).(string)
	return s
}

func role(r *http.Request) string {
	s, _ := r.Context().Value(ctxRole).(string)
	return s
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// logAction appends to the audit trail. Callers hold b.mu.
func (b *Backend) logAction(username, action string) {
	b.nextID++
	ts := b.now()
	b.audit = append(b.audit, model.AuditLog{
		ID:           b.nextID,
		Username:     username,
		Action:       action,
		Timestamp:    float64(ts.UnixNano()) / 1e9,
		ReadableTime: ts.Format("2006-01-02 15:04:05"),
	})
}

func (b *Backend) findEquipment(id int64) *model.Equipment {
	for i := range b.equipment {
		if b.equipment[i].ID == id {
			return &b.equipment[i]
		}
	}
	return nil
}

// --- auth ---

func (b *Backend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Role == "" {
		req.Role = model.RoleCustomer.String()
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[req.Username]; exists {
		writeMessage(w, http.StatusConflict, "Username already exists")
		return
	}
	b.users[req.Username] = &user{name: req.Name, username: req.Username, password: hashPassword(req.Password), role: req.Role}
	b.logAction(req.Username, "Registered")
	writeMessage(w, http.StatusCreated, "Registered successfully")
}

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	u := b.users[req.Username]
	b.mu.Unlock()
	if u == nil || u.password != hashPassword(req.Password) {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tok, err := token.Issue([]byte(Secret), u.username, u.role, 24*time.Hour)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := model.LoginResponse{Token: tok, Role: u.role, Username: u.username}
	if b.IncludeName {
		resp.Name = u.name
	}

	b.mu.Lock()
	b.logAction(u.username, "Logged in")
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

// --- equipment ---

func (b *Backend) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []model.Equipment{}
	for _, eq := range b.equipment {
		if eq.IsActive {
			out = append(out, eq)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) handleListAllEquipment(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]model.Equipment{}, b.equipment...))
}

func (b *Backend) handleAddEquipment(w http.ResponseWriter, r *http.Request) {
	var req model.NewEquipment
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.equipment = append(b.equipment, model.Equipment{ID: b.nextID, Name: req.Name, Price: req.Price, IsActive: true})
	b.logAction(username(r), "Added equipment "+req.Name)
	writeMessage(w, http.StatusCreated, "Equipment added")
}

func (b *Backend) handleSetActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		eq := b.findEquipment(id)
		if eq == nil {
			writeMessage(w, http.StatusNotFound, "Equipment not found")
			return
		}
		eq.IsActive = active
		verb := "Deactivated"
		if active {
			verb = "Activated"
		}
		b.logAction(username(r), fmt.Sprintf("%s equipment %d", verb, id))
		writeMessage(w, http.StatusOK, "Equipment "+strings.ToLower(verb))
	}
}

// --- rentals ---

func (b *Backend) handleCreateRental(w http.ResponseWriter, r *http.Request) {
	var req model.NewRental
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	eq := b.findEquipment(req.EquipmentID)
	if eq == nil || !eq.IsActive {
		writeMessage(w, http.StatusNotFound, "Equipment not available")
		return
	}
	b.nextID++
	b.rentals = append(b.rentals, model.Rental{
		ID:            b.nextID,
		Username:      username(r),
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		Days:          req.Days,
		Total:         eq.Price * float64(req.Days),
		Status:        model.RentalStatusRented,
	})
	b.logAction(username(r), fmt.Sprintf("Rented %s for %d days", eq.Name, req.Days))
	writeMessage(w, http.StatusCreated, "Rental created")
}

func (b *Backend) handleMyRentals(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []model.Rental{}
	for _, rent := range b.rentals {
		if rent.Username == username(r) {
			out = append(out, rent)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) handleAllRentals(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]model.Rental{}, b.rentals...))
}

func (b *Backend) handleReturnRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.rentals {
		rent := &b.rentals[i]
		if rent.ID != id {
			continue
		}
		if role(r) != model.RoleAdmin.String() && rent.Username != username(r) {
			writeMessage(w, http.StatusForbidden, "Not your rental")
			return
		}
		if !rent.Status.CanTransitionTo(model.RentalStatusReturned) {
			writeMessage(w, http.StatusConflict, "Rental already returned")
			return
		}
		rent.Status = model.RentalStatusReturned
		b.logAction(username(r), fmt.Sprintf("Returned rental %d", id))
		writeMessage(w, http.StatusOK, "Rental returned")
		return
	}
	writeMessage(w, http.StatusNotFound, "Rental not found")
}

// --- reports ---

func (b *Backend) handleRevenue(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rows := map[string]*model.RevenueRow{}
	for _, rent := range b.rentals {
		row := rows[rent.EquipmentName]
		if row == nil {
			row = &model.RevenueRow{Name: rent.EquipmentName}
			rows[rent.EquipmentName] = row
		}
		row.RentalCount++
		row.Revenue += rent.Total
	}
	out := make([]model.RevenueRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) handleAuditLogs(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.AuditLog, len(b.audit))
	for i, entry := range b.audit {
		out[len(b.audit)-1-i] = entry
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) handleStats(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var stats model.DashboardStats
	if role(r) == model.RoleAdmin.String() {
		stats.TotalEquipment = len(b.equipment)
		stats.TotalRentals = len(b.rentals)
		for _, u := range b.users {
			if u.role == model.RoleCustomer.String() {
				stats.TotalCustomers++
			}
		}
		for _, rent := range b.rentals {
			stats.TotalRevenue += rent.Total
			if rent.Status == model.RentalStatusRented {
				stats.ActiveRentals++
			}
		}
	} else {
		for _, rent := range b.rentals {
			if rent.Username != username(r) {
				continue
			}
			stats.TotalRentals++
			stats.TotalSpent += rent.Total
			if rent.Status == model.RentalStatusRented {
				stats.ActiveRentals++
			}
		}
	}
	writeJSON(w, http.StatusOK, stats)
}

// --- AI ---

func (b *Backend) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req model.RecommendRequest
	if !decode(w, r, &req) {
		return
	}
	b.mu.Lock()
	recs := []model.Recommendation{}
	for _, eq := range b.equipment {
		if eq.IsActive {
			recs = append(recs, model.Recommendation{
				Equipment:     eq.Name,
				Reason:        fmt.Sprintf("Suited to %s on %s soil", req.CropType, req.SoilType),
				Priority:      len(recs) + 1,
				EstimatedDays: 3,
			})
		}
	}
	items := append([]model.Equipment(nil), b.equipment...)
	b.mu.Unlock()

	resp := model.RecommendResponse{
		Recommendations: recs,
		SeasonalTips:    "Plan rentals early in " + req.Season + ".",
	}
	for _, rec := range recs {
		if cost, ok := rec.EstimatedCost(items); ok {
			resp.TotalEstimatedCost += cost
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (b *Backend) handleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeMessage(w, http.StatusBadRequest, "Question is required")
		return
	}
	writeJSON(w, http.StatusOK, model.ChatResponse{
		Response:  b.ChatReply,
		Timestamp: float64(b.now().UnixNano()) / 1e9,
	})
}

func (b *Backend) handleContract(w http.ResponseWriter, r *http.Request) {
	var req model.ContractRequest
	if !decode(w, r, &req) {
		return
	}
	html := fmt.Sprintf("<h1>Rental Agreement %s</h1><p>%s rents %s for %d days at %.2f per day.</p>",
		uuid.New().String(), req.CustomerName, req.EquipmentName, req.Days, req.DailyRate)
	writeJSON(w, http.StatusOK, model.ContractResponse{
		ContractHTML: html,
		GeneratedAt:  b.now().UTC().Format(time.RFC3339),
	})
}
