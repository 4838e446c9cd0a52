package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func registerSystemRoutes(router *mux.Router, handler *Handler, metrics http.Handler) {
	router.HandleFunc("/healthz", handler.Healthz).Methods(http.MethodGet)
	if metrics == nil {
		return
	}

	router.Handle("/metrics", metrics).Methods(http.MethodGet)
}

func registerScoresRoutes(router *mux.Router, handler *Handler) {
	v1 := router.PathPrefix("/v1").Subrouter()
	// Subrouters do not inherit the root's fallback handlers.
	v1.NotFoundHandler = http.HandlerFunc(notFound)
	v1.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	v1.HandleFunc("/leagues", handler.ListLeagues).Methods(http.MethodGet)
	v1.HandleFunc("/matches", handler.ListMatches).Methods(http.MethodGet)
	v1.HandleFunc("/leagues/{league}/table", handler.GetLeagueTable).Methods(http.MethodGet)
	v1.HandleFunc("/leagues/{league}/overview", handler.GetLeagueOverview).Methods(http.MethodGet)
}
