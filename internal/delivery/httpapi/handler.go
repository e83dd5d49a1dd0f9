package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/service"
)

const maxBodyBytes = 1 << 20

// Config configures the JSON API.
type Config struct {
	BotToken        string // signs Telegram WebApp init data
	RateLimit       int    // requests per minute per IP
	AllowHeaderAuth bool
}

// Handler serves the JSON API.
type Handler struct {
	cfg        Config
	flashcards FlashcardService
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewHandler(cfg Config, flashcards FlashcardService, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		flashcards: flashcards,
		validate:   validator.New(),
		logger:     logger,
	}
}

// Router builds the chi router with all middleware and routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggerMiddleware(h.logger))
	r.Use(recoveryMiddleware(h.logger))
	if h.cfg.RateLimit > 0 {
		r.Use(httprate.LimitByIP(h.cfg.RateLimit, time.Minute))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(h.authMiddleware)

		r.Route("/decks", func(r chi.Router) {
			r.Get("/", h.listDecks)
			r.Post("/", h.createDeck)
			r.Patch("/{deckID}", h.updateDeck)
			r.Delete("/{deckID}", h.deleteDeck)

			r.Get("/{deckID}/cards", h.listDeckCards)
			r.Post("/{deckID}/cards", h.createCard)
			r.Delete("/{deckID}/cards/{userCardID}", h.removeCard)
		})

		r.Route("/training", func(r chi.Router) {
			r.Get("/next", h.nextCard)
			r.Get("/cards/{userCardID}", h.getCard)
			r.Post("/cards/{userCardID}/review", h.reviewCard)
		})
	})

	return r
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrGenerationFailed):
		h.logger.Warn("card generation failed",
			zap.String("request_id", getRequestID(r.Context())),
			zap.Error(err),
		)
		h.respondError(w, http.StatusBadGateway, "card generation failed")
	default:
		h.logger.Error("request failed",
			zap.String("request_id", getRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
			return false
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// idParam parses a positive int64 path parameter.
func (h *Handler) idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
