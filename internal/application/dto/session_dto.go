package dto

// LoginRequest credenciales del formulario de ingreso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse identidad activa y las vistas que su rol puede abrir.
type SessionResponse struct {
	Username  string   `json:"username"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	RoleLabel string   `json:"role_label"`
	HomeView  string   `json:"home_view"`
	Views     []string `json:"views"`
}
