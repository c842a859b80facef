package entity

import "fmt"

// Role rol fijo de un usuario.
type Role string

// Roles válidos.
const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "empleado"
)

// ParseRole convierte un string en Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("rol desconocido %q", s)
}

// DisplayName etiqueta del rol para la presentación.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleEmployee:
		return "Empleado"
	}
	return string(r)
}

// User identidad activa; se adjunta a cada movimiento creado mientras la sesión está abierta.
// No contiene credenciales.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}
