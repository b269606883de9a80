package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCliente    Role = "cliente"
	RoleEntregador Role = "entregador"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCliente, RoleEntregador:
		return true
	}
	return false
}

// rolePriority decides which role wins when a user holds several.
var rolePriority = []Role{RoleAdmin, RoleEntregador, RoleCliente}

type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileParams struct {
	UserID   string
	FullName *string
	Phone    *string
}
