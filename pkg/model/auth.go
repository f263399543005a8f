package model

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks required fields and the role. An empty role defaults
// to customer.
func (r *RegisterRequest) Validate() error {
	if r.Role == "" {
		r.Role = RoleCustomer.String()
	}
	var details []FieldError
	if r.Name == "" {
		details = append(details, FieldError{Field: "name", Message: "is required"})
	}
	if r.Username == "" {
		details = append(details, FieldError{Field: "username", Message: "is required"})
	}
	if r.Password == "" {
		details = append(details, FieldError{Field: "password", Message: "is required"})
	}
	if !ParseRole(r.Role).Valid() {
		details = append(details, FieldError{Field: "role", Message: "must be admin or customer"})
	}
	if len(details) > 0 {
		return NewValidationError("invalid registration", details...)
	}
	return nil
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful POST /login.
// The backend may omit name.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}
