package entity

import "time"

// Roles válidos del sistema. Conjunto cerrado: cualquier otro valor se trata
// como "sin rol" en las decisiones de autorización.
const (
	RoleSales   = "sales"   // Account Manager (AM)
	RoleManager = "manager" // Manager Business Service
	RoleAdmin   = "admin"
)

// RoleLabels etiquetas de presentación por rol.
var RoleLabels = map[string]string{
	RoleAdmin:   "ADMINISTRATOR",
	RoleSales:   "Account Manager",
	RoleManager: "Manager Business Service",
}

// AllRoles devuelve los roles válidos en orden estable.
func AllRoles() []string {
	return []string{RoleSales, RoleManager, RoleAdmin}
}

// ValidRole indica si role pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	_, ok := RoleLabels[role]
	return ok
}

// Estados de cuenta. Un usuario recién registrado queda "pending" hasta que
// su manager o un admin lo apruebe.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

// User representa una cuenta del sistema (AM, manager o admin).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	NIK          string // número de identificación del empleado
	IDSales      string // identificador comercial del AM (vacío para manager/admin)
	Role         string // sales, manager, admin
	Status       string // pending, active, rejected
	ManagerID    string // manager asignado al registrarse (vacío para manager/admin)
	Witel        string
	Region       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity es la identidad autenticada que viaja en la sesión. Es el único
// dato que persiste el Session Store; se construye en el login y se destruye
// en el logout.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HasRole indica si la identidad tiene alguno de los roles permitidos.
// Devuelve false con identidad nil o rol vacío: un rol malformado nunca
// autoriza ni rompe la puerta de autorización.
func (i *Identity) HasRole(allowed ...string) bool {
	if i == nil || i.Role == "" {
		return false
	}
	for _, r := range allowed {
		if i.Role == r {
			return true
		}
	}
	return false
}

// IdentityOf construye la Identity de sesión a partir del usuario.
func IdentityOf(u *User) *Identity {
	if u == nil {
		return nil
	}
	return &Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
