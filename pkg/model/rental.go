package model

// RentalStatus is the lifecycle state of a Rental.
type RentalStatus string

const (
	RentalStatusRented   RentalStatus = "rented"
	RentalStatusReturned RentalStatus = "returned"
)

// String returns the string representation of the rental status.
func (s RentalStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the rental can no longer change.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusReturned
}

// ValidRentalTransitions defines the allowed status transitions for rentals.
var ValidRentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusRented: {RentalStatusReturned},
}

// CanTransitionTo reports whether a transition from s to target is valid.
func (s RentalStatus) CanTransitionTo(target RentalStatus) bool {
	for _, allowed := range ValidRentalTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Rental is a customer's rental of one piece of equipment.
type Rental struct {
	ID            int64        `json:"id"`
	Username      string       `json:"username"`
	EquipmentID   int64        `json:"equipment_id"`
	EquipmentName string       `json:"equipment_name"`
	Days          int          `json:"days"`
	Total         float64      `json:"total"`
	Status        RentalStatus `json:"status"`
}

// NewRental is the body of POST /rentals.
type NewRental struct {
	EquipmentID int64 `json:"equipment_id"`
	Days        int   `json:"days"`
}

// Validate checks the request before it is sent.
func (n NewRental) Validate() error {
	var details []FieldError
	if n.EquipmentID <= 0 {
		details = append(details, FieldError{Field: "equipment_id", Message: "is required"})
	}
	if n.Days <= 0 {
		details = append(details, FieldError{Field: "days", Message: "must be at least 1"})
	}
	if len(details) > 0 {
		return NewValidationError("invalid rental", details...)
	}
	return nil
}

// FilterRentals returns the rentals with the given status.
// An empty status returns all rentals.
func FilterRentals(rentals []Rental, status RentalStatus) []Rental {
	if status == "" {
		return rentals
	}
	out := make([]Rental, 0, len(rentals))
	for _, r := range rentals {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}
