package session

// Capacity is the number of turns kept per session.
const Capacity = 10

// Log prefixes
const (
	LogPrefixSweep = "internal.session.Store.sweep"
)

// Log messages
const (
	LogMsgSessionsSwept = "Cleaned up %d idle sessions"
)
