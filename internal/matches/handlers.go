package matches

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/emberlyapp/emberly-backend/internal/auth"
	"github.com/emberlyapp/emberly-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto LikeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := h.service.Like(r.Context(), userID, dto.TargetID)
	if err != nil {
		if err == ErrCannotLikeSelf {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithAppError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusCreated, match)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params := ListMatchesParams{Status: r.URL.Query().Get("status")}
	if err := utils.ValidateStruct(params); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := h.service.ListMatches(r.Context(), userID, Status(params.Status))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, matches)
}

func (h *Handler) AcceptLike(w http.ResponseWriter, r *http.Request) {
	h.respondToLike(w, r, h.service.AcceptLike)
}

func (h *Handler) RejectLike(w http.ResponseWriter, r *http.Request) {
	h.respondToLike(w, r, h.service.RejectLike)
}

func (h *Handler) respondToLike(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actorID, matchID string) (*Match, error)) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID := mux.Vars(r)["id"]
	match, err := fn(r.Context(), userID, matchID)
	if err != nil {
		if err == ErrNotRecipient {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithAppError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, match)
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID := mux.Vars(r)["id"]
	if err := h.service.DeleteMatch(r.Context(), userID, matchID); err != nil {
		if err == ErrNotParticipant {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithAppError(w, err)
		return
	}

	utils.MessageResponse(w, "Match deleted successfully", http.StatusOK)
}
