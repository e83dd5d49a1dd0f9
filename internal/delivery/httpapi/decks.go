package httpapi

import (
	"net/http"
)

// listDecks handles GET /api/decks.
func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	decks, err := h.flashcards.ListUserDecks(r.Context(), profile)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	resp := make([]deckResponse, 0, len(decks))
	for _, d := range decks {
		resp = append(resp, toDeckResponse(d))
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// createDeck handles POST /api/decks.
func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	var req createDeckRequest
	if !h.decode(w, r, &req) {
		return
	}

	deck, err := h.flashcards.CreateDeck(r.Context(), profile, req.Name, req.Description)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toDeckResponse(*deck))
}

// updateDeck handles PATCH /api/decks/{deckID}.
func (h *Handler) updateDeck(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	deckID, ok := h.idParam(w, r, "deckID")
	if !ok {
		return
	}

	var req updateDeckRequest
	if !h.decode(w, r, &req) {
		return
	}

	deck, err := h.flashcards.UpdateDeck(r.Context(), profile, deckID, req.Name, req.Description)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDeckResponse(*deck))
}

// deleteDeck handles DELETE /api/decks/{deckID}.
func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	deckID, ok := h.idParam(w, r, "deckID")
	if !ok {
		return
	}

	if err := h.flashcards.DeleteDeck(r.Context(), profile, deckID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listDeckCards handles GET /api/decks/{deckID}/cards.
func (h *Handler) listDeckCards(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	deckID, ok := h.idParam(w, r, "deckID")
	if !ok {
		return
	}

	cards, err := h.flashcards.ListDeckCards(r.Context(), profile, deckID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	resp := make([]deckCardResponse, 0, len(cards))
	for i := range cards {
		resp = append(resp, toDeckCardResponse(&cards[i]))
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// createCard handles POST /api/decks/{deckID}/cards.
func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	deckID, ok := h.idParam(w, r, "deckID")
	if !ok {
		return
	}

	var req createCardRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.flashcards.CreateCardForDeck(r.Context(), profile, deckID, req.Prompt)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toCreationResponse(res))
}

// removeCard handles DELETE /api/decks/{deckID}/cards/{userCardID}.
func (h *Handler) removeCard(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())

	deckID, ok := h.idParam(w, r, "deckID")
	if !ok {
		return
	}
	userCardID, ok := h.idParam(w, r, "userCardID")
	if !ok {
		return
	}

	if err := h.flashcards.RemoveCardFromDeck(r.Context(), profile, deckID, userCardID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
