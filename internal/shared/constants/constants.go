package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderXRequestID = "X-Request-ID"

	// Database table names
	TableStudents      = "students"
	TablePlans         = "plans"
	TableRegistrations = "registrations"
	TableFailedJobs    = "failed_jobs"
)
