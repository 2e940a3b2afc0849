package domain

// Operation is a CRUD operation class checked by the authorization gate.
type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

var rolePermissions = map[Role]map[Operation]struct{}{
	RoleAdmin:   {OpCreate: {}, OpRead: {}, OpUpdate: {}, OpDelete: {}},
	RoleCreator: {OpCreate: {}, OpRead: {}, OpUpdate: {}},
	RoleReader:  {OpRead: {}},
}

// Allowed reports whether role may perform op. Unknown or empty roles are
// denied: the gate fails closed.
func Allowed(role Role, op Operation) bool {
	_, ok := rolePermissions[role][op]
	return ok
}
