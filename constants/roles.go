package constants

// User roles
const (
	RoleAdmin      = "ADMIN"
	RoleDispatcher = "DISPATCHER"
	RoleClient     = "CLIENT"
)
