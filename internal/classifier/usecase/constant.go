package usecase

// Log prefixes
const (
	LogPrefixClassify          = "internal.classifier.usecase.Classify"
	LogPrefixDetectMultiIntent = "internal.classifier.usecase.DetectMultiIntent"
	LogPrefixResolve           = "internal.classifier.usecase.ResolveDisambiguation"
	LogPrefixIntentDetail      = "internal.classifier.usecase.IntentDetail"
	LogPrefixClearSession      = "internal.classifier.usecase.ClearSession"
	LogPrefixBootstrap         = "internal.classifier.usecase.Bootstrap"
)

// Log messages
const (
	LogMsgClassified       = "intent=%s confidence=%.3f boosted=%t segments=%d ambiguous=%t"
	LogMsgFallback         = "no index hits for utterance, routing to %s"
	LogMsgContextBoost     = "context boost %s(%.3f) -> %s(%.3f)"
	LogMsgResolved         = "session %s resolved option %d to %s"
	LogMsgSessionCleared   = "session %s cleared"
	LogMsgPipelineReady    = "pipeline ready: %d intents, %d vectors, embedder=%s dim=%d"
	LogMsgInvalidSelection = "session %s: %v"
)

// Base classification
const (
	SearchK          = 10
	VoteWindow       = 5
	ConfidenceWindow = 3
	CandidatePool    = 20
	DisambiguationK  = 3
)

// Fallback routing when the index yields nothing.
const (
	FallbackIntent     = "unknown"
	FallbackIntentID   = "UNK"
	FallbackAgent      = "FallbackAgent"
	FallbackCategory   = "unknown"
	FallbackPriority   = 5
	FallbackConfidence = 0.5
)

// Context boost
const (
	ContextWindow       = 3
	ShortUtteranceWords = 4
	ContextMaxBaseConf  = 0.8
	ContextCandidateK   = 5
	CueBoost            = 0.15
	ShortBoost          = 0.10
	BoostCap            = 0.95
)

// Session context
const (
	DefaultContextTurns = 5
	SummaryEmpty        = "New conversation - no prior context"
	SummarySingle       = "User has been asking about %s (%d turns)"
	SummaryMany         = "User has discussed: %s (%d turns)"
)

// SlotIntentGeneral is used by ExtractSlots when no intent is given.
const SlotIntentGeneral = "general"

// continuationCues are matched as substrings of the lower-cased utterance.
var continuationCues = []string{
	"also", "and", "what about", "how about", "another",
	"same", "that", "this", "it", "more",
}

// Features advertised by Health.
var features = []string{
	"intent_classification",
	"slot_extraction",
	"multi_intent_detection",
	"disambiguation",
	"context_awareness",
	"session_management",
}
