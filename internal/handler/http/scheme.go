package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/utils"
	"github.com/voxai-app/voxai/models"
)

func (h *Handler) listSchemes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.SchemeFilter{
		Category: r.URL.Query().Get("category"),
		Keyword:  r.URL.Query().Get("q"),
	}

	schemes, err := h.services.SchemeService.ListSchemes(ctx, filter)
	if err != nil {
		log.Err(err).Msg("scheme listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if schemes == nil {
		schemes = []models.Scheme{}
	}

	utils.WriteJSON(w, schemes, http.StatusOK)
}

func (h *Handler) getScheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	schemeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid scheme id")
		http.Error(w, "invalid scheme id", http.StatusBadRequest)
		return
	}

	scheme, err := h.services.SchemeService.GetScheme(ctx, schemeID)
	if err != nil {
		log.Err(err).Int64("schemeID", schemeID).Msg("scheme lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, scheme, http.StatusOK)
}

func (h *Handler) createScheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var scheme models.Scheme
	if err := json.NewDecoder(r.Body).Decode(&scheme); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// the creator is always the authenticated caller, never the body
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		scheme.CreatedBy = userID
	}

	createdScheme, err := h.services.SchemeService.CreateScheme(ctx, scheme)
	if err != nil {
		log.Err(err).Msg("scheme creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, createdScheme, http.StatusOK)
}

func (h *Handler) updateScheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	schemeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid scheme id")
		http.Error(w, "invalid scheme id", http.StatusBadRequest)
		return
	}

	var scheme models.Scheme
	if err := json.NewDecoder(r.Body).Decode(&scheme); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	scheme.SchemeID = schemeID

	updatedScheme, err := h.services.SchemeService.UpdateScheme(ctx, scheme)
	if err != nil {
		log.Err(err).Int64("schemeID", schemeID).Msg("scheme update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedScheme, http.StatusOK)
}

func (h *Handler) deleteScheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	schemeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid scheme id")
		http.Error(w, "invalid scheme id", http.StatusBadRequest)
		return
	}

	if err := h.services.SchemeService.DeleteScheme(ctx, schemeID); err != nil {
		log.Err(err).Int64("schemeID", schemeID).Msg("scheme deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "scheme deleted"}, http.StatusOK)
}
