package session

import "context"

// Persisted field names. Only the gate reads or writes these keys.
const (
	KeyToken    = "token"
	KeyUsername = "username"
	KeyRole     = "role"
	KeyName     = "name"
)

// Keys lists every persisted key in a stable order.
var Keys = []string{KeyToken, KeyUsername, KeyRole, KeyName}

// Fields are the four persisted session values. An empty string means the
// field is absent.
type Fields struct {
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Get returns the value stored under key.
func (f Fields) Get(key string) string {
	switch key {
	case KeyToken:
		return f.Token
	case KeyUsername:
		return f.Username
	case KeyRole:
		return f.Role
	case KeyName:
		return f.Name
	}
	return ""
}

// Set stores value under key. Unknown keys are ignored.
func (f *Fields) Set(key, value string) {
	switch key {
	case KeyToken:
		f.Token = value
	case KeyUsername:
		f.Username = value
	case KeyRole:
		f.Role = value
	case KeyName:
		f.Name = value
	}
}

// Store is durable client-local storage for the session fields.
//
// Load returns absent fields as empty strings; a store with nothing saved
// returns zero Fields and no error. Save overwrites all four fields.
// Clear removes all four fields and succeeds on an empty store.
type Store interface {
	Load(ctx context.Context) (Fields, error)
	Save(ctx context.Context, f Fields) error
	Clear(ctx context.Context) error
}
