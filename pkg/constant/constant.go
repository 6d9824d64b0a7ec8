package constant

const (
	// ProfileFileName is the well-known name of the persisted session
	// profile record inside the configured profile directory.
	ProfileFileName = "user-profile.json"

	DefaultPage     = 1
	DefaultPageSize = 10

	// LoginPath is the entry point unauthenticated visitors are sent to.
	// The originally requested location travels in the ref parameter.
	LoginPath = "/login"
	RefParam  = "ref"
)

// Record service endpoint paths, relative to the configured base URL.
const (
	EndpointValidateToken = "/internal/auth/validate-token"
	EndpointLogin         = "/internal/auth/login"
	EndpointMembers       = "/api/members"
	EndpointMemberStats   = "/api/members/stats"
	EndpointMemberRecent  = "/api/members/recent"
)
