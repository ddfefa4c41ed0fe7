package constants

// Static route constants
const (
	StatusRoute         = "/api/status"
	AuthConnectRoute    = "/auth/ghl"
	AuthCallbackRoute   = "/auth/callback"
	AuthDisconnectRoute = "/auth/disconnect"
	MeRoute             = "/me"
	SetReviewLinkRoute  = "/reviews/set-link"
	GetReviewLinkRoute  = "/reviews/get-link"
	CreateLinkRoute     = "/employee-links/create"
	ListLinksRoute      = "/employee-links/list"
	// Redirect path; the :id parameter is the generated link slug
	ResolveLinkRoute = "/employee-links/go/:id"
)
