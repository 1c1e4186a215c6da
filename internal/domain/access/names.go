package access

// Entity names used in error messages and logs.
const (
	EntityRole          = "Role"
	EntityTransaction   = "Transaction"
	EntityAssignment    = "Assignment"
	EntityAuthorization = "Authorization"
)
