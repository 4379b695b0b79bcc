package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/core/service"
	"github.com/cplinktech/storefront/internal/tracing"
)

type HTTPHandler struct {
	sessions  *service.SessionService
	photos    *service.PhotoLister
	staticDir string
	logger    *zap.Logger
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Payments string `json:"payments"`
}

func NewHTTPHandler(sessions *service.SessionService, photos *service.PhotoLister, staticDir string, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{sessions: sessions, photos: photos, staticDir: staticDir, logger: logger}
}

// Router builds the backend's routes with CORS open to every origin and
// panics turned into 500s.
func (h *HTTPHandler) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(tracing.Middleware)

	r.HandleFunc("/create-checkout-session", h.CreateCheckoutSession).Methods(http.MethodPost)
	r.HandleFunc("/photos", h.Photos).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(h.static())

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(h.logger)),
		handlers.PrintRecoveryStack(true),
	)
	return recovery(cors(r))
}

// CreateCheckoutSession godoc
// @Summary Create a hosted checkout session
// @Accept json
// @Produce json
// @Param request body domain.SessionRequest true "Cart snapshot and customer"
// @Success 200 {object} CheckoutSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /create-checkout-session [post]
func (h *HTTPHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Configured() {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "payment provider not configured"})
		return
	}

	var req domain.SessionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	url, err := h.sessions.CreateSession(r.Context(), req, r.Header.Get("Origin"))
	if err != nil {
		status := http.StatusInternalServerError
		message := err.Error()

		if errors.Is(err, domain.ErrEmptyCart) {
			status = http.StatusBadRequest
			message = "cart is empty"
		} else if errors.Is(err, domain.ErrBackendMisconfigured) {
			message = "payment provider not configured"
		} else {
			h.logger.Error("checkout session failed", zap.Error(err))
		}

		writeJSON(w, status, ErrorResponse{Error: message})
		return
	}

	writeJSON(w, http.StatusOK, CheckoutSessionResponse{URL: url})
}

// Photos godoc
// @Summary List gallery image file names
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse
// @Router /photos [get]
func (h *HTTPHandler) Photos(w http.ResponseWriter, r *http.Request) {
	names, err := h.photos.List()
	if err != nil {
		h.logger.Warn("read photos directory", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Unable to read photos directory"})
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	payments := "unconfigured"
	if h.sessions.Configured() {
		payments = "configured"
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Payments: payments})
}

// static serves files under staticDir and refuses any path with a dot-prefixed
// segment, so .env and friends are never exposed.
func (h *HTTPHandler) static() http.Handler {
	files := http.FileServer(http.Dir(h.staticDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, seg := range strings.Split(path.Clean("/"+r.URL.Path), "/") {
			if strings.HasPrefix(seg, ".") {
				http.NotFound(w, r)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
