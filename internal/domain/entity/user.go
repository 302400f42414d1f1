package entity

// Roles válidos para User.
const (
	RoleAdmin     = "ADMIN"
	RoleManager   = "MANAGER"
	RoleSeller    = "SELLER"
	RoleSupplier  = "SUPPLIER"
	RoleWarehouse = "WAREHOUSE"
)

// Estados de usuario.
const (
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
)

// User miembro del personal. El rol solo decide qué secciones se muestran;
// la autorización real se vuelve a derivar en el borde HTTP.
type User struct {
	ID     string
	Name   string
	Email  string
	Role   string
	Avatar string
	Status string
}

// IsValidRole informa si role es uno de los roles conocidos.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleSeller, RoleSupplier, RoleWarehouse:
		return true
	}
	return false
}
