package action_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"simulator/internal/service/lifecycle"
	"simulator/pkg/logger"
)

type actionResponse struct {
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
	err := h.service.PrimaryAction(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrUnsupported):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, lifecycle.ErrNotInZone),
			errors.Is(err, lifecycle.ErrNoOrder),
			errors.Is(err, lifecycle.ErrDeclined):
			w.WriteHeader(http.StatusConflict)
		default:
			// ошибки игрового сервера: действие доступно для повтора
			w.WriteHeader(http.StatusBadGateway)
		}

		h.writeResponse(w, actionResponse{
			State: h.service.State().String(),
			Error: err.Error(),
		})
		return
	}

	h.writeResponse(w, actionResponse{
		State: h.service.State().String(),
	})
}

func (h *Handler) writeResponse(w http.ResponseWriter, res actionResponse) {
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
