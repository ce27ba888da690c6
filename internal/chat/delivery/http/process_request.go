package http

import (
	"github.com/gin-gonic/gin"
)

// processStartSessionReq binds the optional start session body. An empty
// body is a valid request.
func (h *handler) processStartSessionReq(c *gin.Context) (startSessionReq, error) {
	var req startSessionReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, req.validate()
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processEvaluateReq binds and validates the evaluate request body.
func (h *handler) processEvaluateReq(c *gin.Context) (evaluateReq, error) {
	var req evaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
