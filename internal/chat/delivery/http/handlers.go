package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-negotiator/pkg/response"
)

// StartSession godoc
// @Summary     Start a negotiation session
// @Description Creates a new session with hidden deal parameters and returns the seller's greeting.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body startSessionReq false "Optional seed and metadata"
// @Success     200 {object} response.Resp{body=startSessionResp}
// @Failure     400 {object} response.Resp{body=response.ErrorBody} "Bad Request"
// @Failure     503 {object} response.Resp{body=response.ErrorBody} "Store unavailable"
// @Router      /api/v1/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartSessionReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "InvalidInput", err.Error(), "")
		return
	}

	output, err := h.uc.StartSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		status, code, msg := mapError(err)
		response.Error(c, status, code, msg, "")
		return
	}

	response.OK(c, h.newStartSessionResp(output))
}

// Chat godoc
// @Summary     Send a negotiation message
// @Description Runs one conversational turn against the seller and returns the reply. A reply with errorCode "PersistenceFailed" was generated but could not be written back to the session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Session id and user message"
// @Success     200 {object} response.Resp{body=chatResp}
// @Failure     400 {object} response.Resp{body=response.ErrorBody} "Bad Request"
// @Failure     409 {object} response.Resp{body=response.ErrorBody} "Concurrent modification"
// @Failure     413 {object} response.Resp{body=response.ErrorBody} "Prompt too large"
// @Failure     422 {object} response.Resp{body=response.ErrorBody} "Generation rejected"
// @Failure     502 {object} response.Resp{body=response.ErrorBody} "Empty completion"
// @Failure     503 {object} response.Resp{body=response.ErrorBody} "Providers or store unavailable"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "InvalidInput", err.Error(), req.SessionID)
		return
	}

	output, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		status, code, msg := mapError(err)
		response.Error(c, status, code, msg, req.SessionID)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Evaluate godoc
// @Summary     Evaluate a finished negotiation
// @Description Generates the coaching report grading the user's performance in the session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body evaluateReq true "Session id and optional final terms"
// @Success     200 {object} response.Resp{body=evaluateResp}
// @Failure     400 {object} response.Resp{body=response.ErrorBody} "Bad Request"
// @Failure     404 {object} response.Resp{body=response.ErrorBody} "Session not found"
// @Failure     503 {object} response.Resp{body=response.ErrorBody} "Providers or store unavailable"
// @Router      /api/v1/evaluate [POST]
func (h *handler) Evaluate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEvaluateReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "InvalidInput", err.Error(), req.SessionID)
		return
	}

	output, err := h.uc.Evaluate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Evaluate: %v", err)
		status, code, msg := mapError(err)
		response.Error(c, status, code, msg, req.SessionID)
		return
	}

	response.OK(c, h.newEvaluateResp(output))
}
