package http

import (
	"encoding/json"
	"net/http"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/utils"
	"github.com/voxai-app/voxai/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)

	reply, err := h.services.ChatService.Reply(ctx, userID, req.Message)
	if err != nil {
		log.Err(err).Msg("chat reply failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ChatResponse{Reply: reply}, http.StatusOK)
}
