package matches

import (
	"github.com/gorilla/mux"

	"github.com/emberlyapp/emberly-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/matches").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/like", handler.Like).Methods("POST")
	api.HandleFunc("", handler.ListMatches).Methods("GET")
	api.HandleFunc("/{id}/accept", handler.AcceptLike).Methods("POST")
	api.HandleFunc("/{id}/reject", handler.RejectLike).Methods("POST")
	api.HandleFunc("/{id}", handler.DeleteMatch).Methods("DELETE")
}
