package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processUtteranceReq(c *gin.Context) (utteranceReq, error) {
	var req utteranceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processResolveReq(c *gin.Context) (resolveReq, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSessionReq reads the :id path param and the optional turns query.
func (h *handler) processSessionReq(c *gin.Context) (string, int, error) {
	id := c.Param("id")
	if id == "" {
		return "", 0, errSessionRequired
	}

	turns := 0
	if raw := c.Query("turns"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", 0, err
		}
		turns = n
	}
	return id, turns, nil
}
