package httpapi

import (
	"net/http"
	"strconv"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

// nextCard handles GET /api/training/next. Responds 204 when nothing is due.
func (h *Handler) nextCard(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	var deckID *int64
	if raw := r.URL.Query().Get("deck_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.respondError(w, http.StatusBadRequest, "invalid deck_id")
			return
		}
		deckID = &id
	}

	card, err := h.flashcards.GetNextCard(r.Context(), profile.UserID, deckID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if card == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.respondJSON(w, http.StatusOK, toTrainingCardResponse(card))
}

// getCard handles GET /api/training/cards/{userCardID}.
func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	userCardID, ok := h.idParam(w, r, "userCardID")
	if !ok {
		return
	}

	card, err := h.flashcards.GetUserCard(r.Context(), profile.UserID, userCardID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTrainingCardResponse(card))
}

// reviewCard handles POST /api/training/cards/{userCardID}/review.
func (h *Handler) reviewCard(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	userCardID, ok := h.idParam(w, r, "userCardID")
	if !ok {
		return
	}

	var req reviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	if _, err := h.flashcards.RecordReview(r.Context(), profile.UserID, userCardID, entities.Rating(req.Rating)); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
