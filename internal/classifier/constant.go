package classifier

// DefaultSessionID is used when a caller supplies no session id.
const DefaultSessionID = "default"

// Recommendations attached to a disambiguation report.
const (
	RecommendClarify = "Ask user for clarification"
	RecommendProceed = "Proceed with top intent"
)
