package feed

import (
	"net/http"
	"strconv"

	"github.com/emberlyapp/emberly-backend/internal/auth"
	"github.com/emberlyapp/emberly-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	pageSize := 0
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			pageSize = l
		}
	}

	page, err := h.service.FetchPage(r.Context(), userID, pageSize, r.URL.Query().Get("cursor"))
	if err != nil {
		if err == ErrInvalidCursor {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithAppError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, page)
}
