package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	NIK       string    `json:"nik,omitempty"`
	IDSales   string    `json:"id_sales,omitempty"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label,omitempty"`
	Status    string    `json:"status"`
	ManagerID string    `json:"manager_id,omitempty"`
	Witel     string    `json:"witel,omitempty"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuario + destino post-login.
type LoginResponse struct {
	Token      string       `json:"token"`
	User       UserResponse `json:"user"`
	RedirectTo string       `json:"redirect_to"`
}

// RegisterRequest alta de cuenta (queda pendiente de aprobación).
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	NIK       string `json:"nik"`
	IDSales   string `json:"id_sales"`
	Role      string `json:"role"`
	ManagerID string `json:"manager_id"`
	Witel     string `json:"witel"`
	Region    string `json:"region"`
}

// ManagerOption entrada del selector de managers en el registro.
type ManagerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
