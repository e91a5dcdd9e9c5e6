package blocks

import (
	"github.com/gorilla/mux"

	"github.com/emberlyapp/emberly-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/blocks").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.BlockUser).Methods("POST")
	api.HandleFunc("", handler.ListBlocked).Methods("GET")
}
