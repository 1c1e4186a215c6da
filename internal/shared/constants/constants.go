package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXProcessTime  = "X-Process-Time"
	HeaderUserAgent     = "User-Agent"
	HeaderAPIVersion    = "X-API-Version"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyUser       = "current_user"
	ContextKeyRequestID  = "request_id"
	ContextKeyAPIVersion = "api_version"

	// Database table names
	TableUsers          = "users"
	TableRoles          = "roles"
	TableTransactions   = "transactions"
	TableAssignments    = "assignments"
	TableAuthorizations = "authorizations"

	// Audit defaults for rows written without an authenticated caller
	SystemLogin    = "system"
	SystemOriginIP = "0.0.0.0"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
