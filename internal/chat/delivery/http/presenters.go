package http

import (
	"strings"

	"ai-negotiator/internal/chat"
	"ai-negotiator/internal/negotiation"
)

// --- Request DTOs ---

type startSessionReq struct {
	Seed     string            `json:"seed"`
	Metadata map[string]string `json:"metadata"`
}

func (r startSessionReq) validate() error { return nil }

func (r startSessionReq) toInput() chat.StartSessionInput {
	return chat.StartSessionInput{
		Seed:     r.Seed,
		Metadata: r.Metadata,
	}
}

// ---

type chatReq struct {
	SessionID string            `json:"sessionId" binding:"required"`
	Message   string            `json:"message"   binding:"required"`
	Context   map[string]string `json:"context"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrInvalidInput
	}
	return nil
}

func (r chatReq) toInput() chat.ProcessTurnInput {
	return chat.ProcessTurnInput{
		SessionID: r.SessionID,
		Message:   r.Message,
		Context:   r.Context,
	}
}

// ---

type termsReq struct {
	Price    *float64 `json:"price"`
	Delivery *int     `json:"delivery"`
	Volume   *int     `json:"volume"`
}

func (r termsReq) toTerms() negotiation.Terms {
	return negotiation.Terms{
		Price:    r.Price,
		Delivery: r.Delivery,
		Volume:   r.Volume,
	}
}

type evaluateReq struct {
	SessionID  string   `json:"sessionId" binding:"required"`
	FinalTerms termsReq `json:"finalTerms"`
}

func (r evaluateReq) validate() error { return nil }

func (r evaluateReq) toInput() chat.EvaluateInput {
	return chat.EvaluateInput{
		SessionID:  r.SessionID,
		FinalTerms: r.FinalTerms.toTerms(),
	}
}

// --- Response DTOs ---

type startSessionResp struct {
	SessionID string `json:"sessionId"`
	Greeting  string `json:"greeting"`
}

func (h *handler) newStartSessionResp(out chat.StartSessionOutput) startSessionResp {
	return startSessionResp{
		SessionID: out.SessionID,
		Greeting:  out.Greeting,
	}
}

type termsResp struct {
	Price    *float64 `json:"price,omitempty"`
	Delivery *int     `json:"delivery,omitempty"`
	Volume   *int     `json:"volume,omitempty"`
}

type chatResp struct {
	Response      string     `json:"response"`
	SessionID     string     `json:"sessionId"`
	DealReady     bool       `json:"dealReady,omitempty"`
	ProposedTerms *termsResp `json:"proposedTerms,omitempty"`
	// ErrorCode flags partial success: the reply was generated but could
	// not be persisted.
	ErrorCode string `json:"errorCode,omitempty"`
}

func (h *handler) newChatResp(out chat.ProcessTurnOutput) chatResp {
	resp := chatResp{
		Response:  out.Response,
		SessionID: out.SessionID,
		DealReady: out.DealReady,
	}
	if out.Terms != nil {
		resp.ProposedTerms = &termsResp{
			Price:    out.Terms.Price,
			Delivery: out.Terms.Delivery,
			Volume:   out.Terms.Volume,
		}
	}
	if out.PersistenceFailed {
		resp.ErrorCode = "PersistenceFailed"
	}
	return resp
}

type evaluateResp struct {
	SessionID string `json:"sessionId"`
	Report    string `json:"report"`
}

func (h *handler) newEvaluateResp(out chat.EvaluateOutput) evaluateResp {
	return evaluateResp{
		SessionID: out.SessionID,
		Report:    out.Report,
	}
}
