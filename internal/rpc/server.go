package rpc

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shiva/reservation/internal/httpmw"
	"github.com/shiva/reservation/internal/manager"
	"github.com/shiva/reservation/pkg/cache"
	"github.com/shiva/reservation/pkg/db"
)

// NewRouter builds the full reservation API: the eight operations of
// spec §6.1 mapped onto HTTP verbs and paths, plus a /health endpoint,
// wrapped with request logging and panic recovery.
func NewRouter(mgr *manager.Manager, pool *pgxpool.Pool, redisClient *redis.Client) http.Handler {
	reservations := NewReservationHandler(mgr)
	streams := NewStreamHandler(mgr)

	router := mux.NewRouter()
	router.HandleFunc("/health", healthHandler(pool, redisClient)).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/reservations", reservations.Reserve).Methods(http.MethodPost)
	v1.HandleFunc("/reservations", streams.Query).Methods(http.MethodGet)
	v1.HandleFunc("/reservations:filter", reservations.Filter).Methods(http.MethodGet)
	v1.HandleFunc("/reservations:listen", streams.Listen).Methods(http.MethodGet)
	v1.HandleFunc("/reservations/{id}", reservations.Get).Methods(http.MethodGet)
	v1.HandleFunc("/reservations/{id}", reservations.Update).Methods(http.MethodPatch)
	v1.HandleFunc("/reservations/{id}", reservations.Cancel).Methods(http.MethodDelete)
	v1.HandleFunc("/reservations/{id}/confirm", reservations.Confirm).Methods(http.MethodPost)

	var handler http.Handler = router
	handler = httpmw.RequestLogger(handler)
	handler = httpmw.Recoverer(handler)
	return handler
}

type healthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

func healthHandler(pool *pgxpool.Pool, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Services: make(map[string]string)}

		if err := db.HealthCheck(r.Context(), pool); err != nil {
			resp.Status = "degraded"
			resp.Services["postgres"] = "unhealthy: " + err.Error()
		} else {
			resp.Services["postgres"] = "healthy"
		}

		if redisClient == nil {
			resp.Services["redis"] = "disabled"
		} else if err := cache.HealthCheck(r.Context(), redisClient); err != nil {
			resp.Status = "degraded"
			resp.Services["redis"] = "unhealthy: " + err.Error()
		} else {
			resp.Services["redis"] = "healthy"
		}

		w.Header().Set("Content-Type", "application/json")
		if resp.Status != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(resp)
	}
}
