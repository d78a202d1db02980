package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Notification feed window
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100

	HeaderAuthorization = "Authorization"

	// Context keys
	ContextKeyActor = "actor"

	// Notification feed types
	NotificationTypeMaintenance = "maintenance"

	ErrMsgInternalServerError = "Internal server error occurred"
)
