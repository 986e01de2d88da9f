package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DanaramPradeep/crypto-tracker/chart"
	"github.com/DanaramPradeep/crypto-tracker/events"
	"github.com/DanaramPradeep/crypto-tracker/prefs"
	"github.com/DanaramPradeep/crypto-tracker/refresh"
	"github.com/DanaramPradeep/crypto-tracker/store"
)

// Server exposes the presentation boundary: the card-list projection and
// header stats, the per-coin detail projection, and the four input events
// coming back from the UI collaborator.
type Server struct {
	port         string
	store        *store.Store
	controller   *refresh.Controller
	chartService *chart.Service
	prefs        *prefs.Store
	events       *events.SubscriptionManager
	server       *http.Server
}

func New(port string, st *store.Store, controller *refresh.Controller, chartService *chart.Service, p *prefs.Store, sm *events.SubscriptionManager) *Server {
	return &Server{
		port:         port,
		store:        st,
		controller:   controller,
		chartService: chartService,
		prefs:        p,
		events:       sm,
	}
}

// Router builds the HTTP routing table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/v1/dashboard", s.handleDashboard).Methods("GET")
	router.HandleFunc("/api/v1/coins/{id}", s.handleCoinDetail).Methods("GET")

	// Input events from the UI collaborator
	router.HandleFunc("/api/v1/view/search", s.handleSearch).Methods("POST")
	router.HandleFunc("/api/v1/view/sort", s.handleSort).Methods("POST")
	router.HandleFunc("/api/v1/view/favorites-only", s.handleFavoritesOnly).Methods("POST")
	router.HandleFunc("/api/v1/favorites/{id}/toggle", s.handleToggleFavorite).Methods("POST")
	router.HandleFunc("/api/v1/theme", s.handleTheme).Methods("PUT")
	router.HandleFunc("/api/v1/refresh/retry", s.handleRetry).Methods("POST")

	router.HandleFunc("/api/v1/ws", s.handleWebSocket)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// Start implements core.Interface
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Router(),
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}

// Stop implements core.Interface
func (s *Server) Stop() {
	if s.server != nil {
		if err := s.server.Shutdown(context.Background()); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}
}
