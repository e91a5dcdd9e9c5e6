package blocks

import (
	"encoding/json"
	"net/http"

	"github.com/emberlyapp/emberly-backend/internal/auth"
	"github.com/emberlyapp/emberly-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) BlockUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto BlockUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Block(r.Context(), userID, dto.BlockedID); err != nil {
		if err == ErrCannotBlockSelf {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithAppError(w, err)
		return
	}

	utils.MessageResponse(w, "User blocked successfully", http.StatusOK)
}

func (h *Handler) ListBlocked(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	relations, err := h.service.ListBlockedRelations(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, relations)
}
