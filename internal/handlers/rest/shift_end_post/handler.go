package shift_end_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"simulator/internal/pkg/confirm"
	"simulator/internal/service/lifecycle"
	"simulator/pkg/logger"
)

type endShiftRequest struct {
	// Confirm -- согласие на отмену заказа, если он на руках.
	Confirm bool `json:"confirm"`
}

type endShiftResponse struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req endShiftRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	ctx := confirm.WithDecision(r.Context(), req.Confirm)
	err := h.service.RequestEndShift(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrDeclined):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}

		h.writeResponse(w, endShiftResponse{
			State: h.service.State().String(),
			Error: err.Error(),
		})
		return
	}

	h.writeResponse(w, endShiftResponse{
		State: h.service.State().String(),
	})
}

func (h *Handler) writeResponse(w http.ResponseWriter, res endShiftResponse) {
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
