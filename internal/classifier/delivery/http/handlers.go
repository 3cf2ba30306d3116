package http

import (
	"github.com/gin-gonic/gin"

	"intent-router/pkg/response"
)

// Classify godoc
// @Summary     Classify an utterance
// @Description Runs the full pipeline for one utterance: intent, slots, multi-intent split, context boost and disambiguation. The turn is recorded on the conversation.
// @Tags        Classifier
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Utterance and conversation"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sessionID := req.sessionID(h.newID)
	output, err := h.uc.Classify(ctx, req.toInput(sessionID, h.contextAwareDefault))
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}

// Candidates godoc
// @Summary     Rank candidate intents
// @Description Returns the top_k intents by averaged similarity without touching any conversation.
// @Tags        Classifier
// @Accept      json
// @Produce     json
// @Param       body body utteranceReq true "Utterance and top_k (default 3)"
// @Success     200  {object} candidatesResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/candidates [POST]
func (h *handler) Candidates(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUtteranceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Candidates(ctx, req.UserInput, req.topK())
	if err != nil {
		h.l.Errorf(ctx, "uc.Candidates: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, candidatesResp{UserInput: req.UserInput, Candidates: output})
}

// MultiIntent godoc
// @Summary     Split a compound request
// @Description Segments the utterance, classifies each part and suggests an execution order.
// @Tags        Classifier
// @Accept      json
// @Produce     json
// @Param       body body utteranceReq true "Utterance"
// @Success     200  {object} multiIntentResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/multi-intent [POST]
func (h *handler) MultiIntent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUtteranceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DetectMultiIntent(ctx, req.UserInput)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetectMultiIntent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMultiIntentResp(output))
}

// ExtractSlots godoc
// @Summary     Extract slots
// @Description Extracts typed parameters for the given intent, or common entities only when intent is empty.
// @Tags        Classifier
// @Accept      json
// @Produce     json
// @Param       body body utteranceReq true "Utterance and optional intent"
// @Success     200  {object} slotsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/slots [POST]
func (h *handler) ExtractSlots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUtteranceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExtractSlots(ctx, req.UserInput, req.Intent)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractSlots: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSlotsResp(output))
}

// Disambiguate godoc
// @Summary     Check for ambiguity
// @Description Reports whether the top two intents are too close and, if so, the clarification question.
// @Tags        Disambiguation
// @Accept      json
// @Produce     json
// @Param       body body utteranceReq true "Utterance"
// @Success     200  {object} disambiguationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/disambiguation [POST]
func (h *handler) Disambiguate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUtteranceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Disambiguate(ctx, req.UserInput)
	if err != nil {
		h.l.Errorf(ctx, "uc.Disambiguate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, disambiguationResp{
		DisambiguationOffer: output.Offer,
		Candidates:          output.Candidates,
		Recommendation:      output.Recommendation,
	})
}

// Resolve godoc
// @Summary     Resolve a clarification
// @Description Records the option the user picked from a clarification prompt.
// @Tags        Disambiguation
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Selected option"
// @Success     200  {object} resolutionResp
// @Failure     400  {object} response.Resp "Bad Request - option out of range"
// @Router      /api/v1/disambiguation/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ResolveDisambiguation(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ResolveDisambiguation: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResolutionResp(output))
}

// ListIntents godoc
// @Summary     List intents
// @Description Returns the catalog grouped by category.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} intentsResp
// @Router      /api/v1/intents [GET]
func (h *handler) ListIntents(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListIntents(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIntents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newIntentsResp(output))
}

// IntentDetail godoc
// @Summary     Intent detail
// @Description Returns one catalog entry with its slot definitions and prompts.
// @Tags        Catalog
// @Produce     json
// @Param       name path string true "Intent name"
// @Success     200  {object} intentDetailResp
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/intents/{name} [GET]
func (h *handler) IntentDetail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.IntentDetail(ctx, c.Param("name"))
	if err != nil {
		h.l.Errorf(ctx, "uc.IntentDetail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newIntentDetailResp(output))
}

// SessionContext godoc
// @Summary     Conversation context
// @Description Returns recent turns, slot memory and pending sub-intents of a conversation.
// @Tags        Sessions
// @Produce     json
// @Param       id    path  string true  "Conversation ID"
// @Param       turns query int    false "Turns to return (default 5)"
// @Success     200   {object} sessionResp
// @Failure     400   {object} response.Resp "Bad Request"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) SessionContext(c *gin.Context) {
	ctx := c.Request.Context()

	id, turns, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SessionContext(ctx, id, turns)
	if err != nil {
		h.l.Errorf(ctx, "uc.SessionContext: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// NextPending godoc
// @Summary     Next pending sub-intent
// @Description Returns the next queued sub-intent of the latest compound request.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} pendingResp
// @Router      /api/v1/sessions/{id}/next [GET]
func (h *handler) NextPending(c *gin.Context) {
	ctx := c.Request.Context()

	id, _, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	next, ok, err := h.uc.NextPending(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.NextPending: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, pendingResp{HasPending: ok, Intent: next.Intent, RemainingCount: next.Remaining})
}

// ClearSession godoc
// @Summary     Clear a conversation
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, _, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ClearSession(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ClearSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
