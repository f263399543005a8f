package model

import "time"

// RevenueRow is one line of the revenue report.
type RevenueRow struct {
	Name        string  `json:"name"`
	RentalCount int     `json:"rental_count"`
	Revenue     float64 `json:"revenue"`
}

// RevenueTotal sums the revenue column.
func RevenueTotal(rows []RevenueRow) float64 {
	var total float64
	for _, r := range rows {
		total += r.Revenue
	}
	return total
}

// AuditLog is one entry of the backend audit trail.
type AuditLog struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Action       string  `json:"action"`
	Timestamp    float64 `json:"timestamp"` // unix seconds
	ReadableTime string  `json:"readable_time,omitempty"`
}

// Time converts the unix timestamp.
func (a AuditLog) Time() time.Time {
	sec := int64(a.Timestamp)
	nsec := int64((a.Timestamp - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// DashboardStats holds the headline numbers for a dashboard overview.
// Admins receive the totals; customers receive their own rental counts.
type DashboardStats struct {
	TotalEquipment int     `json:"total_equipment,omitempty"`
	TotalRentals   int     `json:"total_rentals"`
	TotalRevenue   float64 `json:"total_revenue,omitempty"`
	TotalCustomers int     `json:"total_customers,omitempty"`
	ActiveRentals  int     `json:"active_rentals"`
	TotalSpent     float64 `json:"total_spent,omitempty"`
}
