package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intent-router/internal/classifier"
	"intent-router/pkg/log"
)

// Handler is the public interface for the classifier HTTP delivery layer.
type Handler interface {
	Classify(c *gin.Context)
	Candidates(c *gin.Context)
	MultiIntent(c *gin.Context)
	ExtractSlots(c *gin.Context)
	Disambiguate(c *gin.Context)
	Resolve(c *gin.Context)
	ListIntents(c *gin.Context)
	IntentDetail(c *gin.Context)
	SessionContext(c *gin.Context)
	NextPending(c *gin.Context)
	ClearSession(c *gin.Context)
}

type handler struct {
	l                   log.Logger
	uc                  classifier.UseCase
	contextAwareDefault bool
	newID               func() string
}

// New creates the classifier HTTP handler. contextAwareDefault applies to
// classify requests that leave context_aware unset.
func New(l log.Logger, uc classifier.UseCase, contextAwareDefault bool) *handler {
	return &handler{
		l:                   l,
		uc:                  uc,
		contextAwareDefault: contextAwareDefault,
		newID:               uuid.NewString,
	}
}
