package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// Capability es un permiso puntual. El conjunto de capacidades de un usuario
// se deriva de su rol y se verifica en la frontera HTTP (middleware), nunca
// dentro del ledger ni del compositor de facturas.
type Capability string

const (
	CapManageProducts Capability = "products:manage"
	CapManageStock    Capability = "stock:manage"
	CapGenerateBills  Capability = "bills:generate"
	CapUpdateBills    Capability = "bills:update"
	CapManageUsers    Capability = "users:manage"
	CapViewReports    Capability = "reports:view"
)

// roleCapabilities mapea cada rol a su conjunto de capacidades.
var roleCapabilities = map[string][]Capability{
	RoleSuperAdmin: {CapManageProducts, CapManageStock, CapGenerateBills, CapUpdateBills, CapManageUsers, CapViewReports},
	RoleAdmin:      {CapManageProducts, CapManageStock, CapGenerateBills, CapUpdateBills, CapViewReports},
	RoleUser:       {CapViewReports},
}

// RoleCapabilities devuelve las capacidades asociadas a un rol.
func RoleCapabilities(role string) []Capability {
	return roleCapabilities[role]
}

// RoleHasCapability indica si el rol incluye la capacidad dada.
func RoleHasCapability(role string, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // superadmin, admin, user
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario puede recibir asignaciones de stock
// (destinatario válido de GenerateBill).
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
