package model

// Equipment is a rentable item in the inventory.
type Equipment struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // per day
	IsActive bool    `json:"is_active"`
}

// NewEquipment is the body of POST /equipment.
type NewEquipment struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate checks the request before it is sent.
func (n NewEquipment) Validate() error {
	var details []FieldError
	if n.Name == "" {
		details = append(details, FieldError{Field: "name", Message: "is required"})
	}
	if n.Price <= 0 {
		details = append(details, FieldError{Field: "price", Message: "must be positive"})
	}
	if len(details) > 0 {
		return NewValidationError("invalid equipment", details...)
	}
	return nil
}

// FindEquipment returns the equipment with the given name, or nil.
func FindEquipment(items []Equipment, name string) *Equipment {
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
	}
	return nil
}
