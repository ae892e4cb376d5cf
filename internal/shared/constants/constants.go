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

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID       = "user_id"
	ContextKeyPrincipal    = "principal"
	ContextKeyRequestID    = "request_id"
	ContextKeyRequestClass = "request_class"
	ContextKeyTenant       = "tenant"
	ContextKeyResource     = "resource"

	// Database table names
	TableAccounts      = "accounts"
	TableSubscriptions = "subscriptions"
	TableAbouts        = "abouts"
	TableSkills        = "skills"
	TableExperiences   = "experiences"
	TableEducations    = "educations"
	TablePortfolios    = "portfolios"
	TableTestimonials  = "testimonials"
	TableServices      = "services"
	TableFunFacts      = "fun_facts"
	TableBrands        = "brands"
	TablePricings      = "pricings"
	TableAwards        = "awards"
	TableIntroFeatures = "intro_features"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)
