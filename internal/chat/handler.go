package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taskpoint/assist/pkg/handlers"
	"github.com/taskpoint/assist/pkg/routes"
)

// Handler provides the HTTP endpoint for chat operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "chat"),
	}
}

// Routes returns the route group definition for chat endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/chat",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Ask},
		},
	}
}

// Ask processes a JSON question envelope through the pipeline and responds
// with the answer envelope. Failures map to the pipeline's error taxonomy.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	resp, err := h.sys.Ask(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
