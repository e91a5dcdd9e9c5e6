package chat

import (
	"encoding/json"
	"net/http"

	"github.com/emberlyapp/emberly-backend/internal/auth"
	"github.com/emberlyapp/emberly-backend/internal/common/utils"
	"github.com/emberlyapp/emberly-backend/internal/matches"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) StartConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto StartConversationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	conversationID, err := h.service.StartConversation(r.Context(), userID, dto.TargetID)
	if err != nil {
		if err == matches.ErrCannotLikeSelf {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithAppError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, ConversationResponse{ConversationID: conversationID})
}
