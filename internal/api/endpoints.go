package api

import (
	"context"
	"fmt"

	"github.com/me/agrirent/pkg/model"
)

// Message is the body of simple acknowledgement responses.
type Message struct {
	Message string `json:"message"`
}

// --- Auth ---

// Register creates an account. The request is validated first.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var msg Message
	if err := c.post(ctx, "/register", req, &msg); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &msg, nil
}

// Login exchanges credentials for a token. It does not touch the session;
// the caller hands the result to session.Gate.Login.
func (c *Client) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	var resp model.LoginResponse
	req := model.LoginRequest{Username: username, Password: password}
	if err := c.post(ctx, "/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &resp, nil
}

// --- Equipment ---

// ListEquipment returns the active equipment customers can rent.
func (c *Client) ListEquipment(ctx context.Context) ([]model.Equipment, error) {
	var items []model.Equipment
	if err := c.get(ctx, "/equipment", &items); err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return items, nil
}

// ListAllEquipment returns every item including inactive ones (admin).
func (c *Client) ListAllEquipment(ctx context.Context) ([]model.Equipment, error) {
	var items []model.Equipment
	if err := c.get(ctx, "/equipment/all", &items); err != nil {
		return nil, fmt.Errorf("list all equipment: %w", err)
	}
	return items, nil
}

// AddEquipment creates an item (admin).
func (c *Client) AddEquipment(ctx context.Context, eq model.NewEquipment) (*Message, error) {
	if err := eq.Validate(); err != nil {
		return nil, err
	}
	var msg Message
	if err := c.post(ctx, "/equipment", eq, &msg); err != nil {
		return nil, fmt.Errorf("add equipment: %w", err)
	}
	return &msg, nil
}

// ActivateEquipment makes an item rentable again (admin).
func (c *Client) ActivateEquipment(ctx context.Context, id int64) (*Message, error) {
	var msg Message
	if err := c.put(ctx, fmt.Sprintf("/equipment/%d/activate", id), &msg); err != nil {
		return nil, fmt.Errorf("activate equipment %d: %w", id, err)
	}
	return &msg, nil
}

// DeactivateEquipment hides an item from customers (admin).
func (c *Client) DeactivateEquipment(ctx context.Context, id int64) (*Message, error) {
	var msg Message
	if err := c.put(ctx, fmt.Sprintf("/equipment/%d/deactivate", id), &msg); err != nil {
		return nil, fmt.Errorf("deactivate equipment %d: %w", id, err)
	}
	return &msg, nil
}

// --- Rentals ---

// CreateRental rents an item for a number of days (customer).
func (c *Client) CreateRental(ctx context.Context, r model.NewRental) (*Message, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var msg Message
	if err := c.post(ctx, "/rentals", r, &msg); err != nil {
		return nil, fmt.Errorf("create rental: %w", err)
	}
	return &msg, nil
}

// MyRentals returns the current customer's rentals.
func (c *Client) MyRentals(ctx context.Context) ([]model.Rental, error) {
	var rentals []model.Rental
	if err := c.get(ctx, "/rentals/my", &rentals); err != nil {
		return nil, fmt.Errorf("list my rentals: %w", err)
	}
	return rentals, nil
}

// AllRentals returns every rental (admin).
func (c *Client) AllRentals(ctx context.Context) ([]model.Rental, error) {
	var rentals []model.Rental
	if err := c.get(ctx, "/rentals", &rentals); err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	return rentals, nil
}

// ReturnRental marks a rental returned.
func (c *Client) ReturnRental(ctx context.Context, id int64) (*Message, error) {
	var msg Message
	if err := c.put(ctx, fmt.Sprintf("/rentals/%d/return", id), &msg); err != nil {
		return nil, fmt.Errorf("return rental %d: %w", id, err)
	}
	return &msg, nil
}

// --- Reports ---

// RevenueReport returns revenue per equipment (admin).
func (c *Client) RevenueReport(ctx context.Context) ([]model.RevenueRow, error) {
	var rows []model.RevenueRow
	if err := c.get(ctx, "/reports/revenue", &rows); err != nil {
		return nil, fmt.Errorf("revenue report: %w", err)
	}
	return rows, nil
}

// AuditLogs returns the audit trail (admin).
func (c *Client) AuditLogs(ctx context.Context) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	if err := c.get(ctx, "/audit-logs", &logs); err != nil {
		return nil, fmt.Errorf("audit logs: %w", err)
	}
	return logs, nil
}

// DashboardStats returns the overview numbers for the caller's role.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.get(ctx, "/stats/dashboard", &stats); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}

// --- AI ---

// Recommend asks the backend LLM proxy for equipment suggestions.
func (c *Client) Recommend(ctx context.Context, req model.RecommendRequest) (*model.RecommendResponse, error) {
	if req.PreviousRentals == nil {
		req.PreviousRentals = []string{}
	}
	var resp model.RecommendResponse
	if err := c.post(ctx, "/ai/recommend", req, &resp); err != nil {
		return nil, fmt.Errorf("ai recommend: %w", err)
	}
	return &resp, nil
}

// Chat sends one question to the assistant.
func (c *Client) Chat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	var resp model.ChatResponse
	if err := c.post(ctx, "/ai/chat", req, &resp); err != nil {
		return nil, fmt.Errorf("ai chat: %w", err)
	}
	return &resp, nil
}

// Contract asks the assistant to draft a rental contract.
func (c *Client) Contract(ctx context.Context, req model.ContractRequest) (*model.ContractResponse, error) {
	var resp model.ContractResponse
	if err := c.post(ctx, "/ai/contract", req, &resp); err != nil {
		return nil, fmt.Errorf("ai contract: %w", err)
	}
	return &resp, nil
}
