package httpapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

const (
	headerInitData  = "X-Telegram-Init-Data"
	headerUserID    = "X-User-Id"
	headerUsername  = "X-User-Username"
	headerFirstName = "X-User-First-Name"
	headerLastName  = "X-User-Last-Name"
)

var (
	ErrUnauthorized    = errors.New("authentication required")
	ErrInvalidInitData = errors.New("invalid init data")
)

type initDataUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// ValidateInitData checks the signature of Telegram WebApp init data and
// returns the profile of the user it was issued for.
func ValidateInitData(initData, botToken string) (entities.Profile, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return entities.Profile{}, fmt.Errorf("%w: %w", ErrInvalidInitData, err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return entities.Profile{}, fmt.Errorf("%w: hash is missing", ErrInvalidInitData)
	}

	if !hmac.Equal([]byte(signInitData(values, botToken)), []byte(strings.ToLower(hash))) {
		return entities.Profile{}, fmt.Errorf("%w: signature mismatch", ErrInvalidInitData)
	}

	var u initDataUser
	if err := json.Unmarshal([]byte(values.Get("user")), &u); err != nil {
		return entities.Profile{}, fmt.Errorf("%w: user: %w", ErrInvalidInitData, err)
	}
	if u.ID == 0 || u.FirstName == "" {
		return entities.Profile{}, fmt.Errorf("%w: user id and first_name are required", ErrInvalidInitData)
	}

	return entities.NewProfile(u.ID, u.Username, u.FirstName, u.LastName), nil
}

// signInitData computes the hex signature of every field except hash.
func signInitData(values url.Values, botToken string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}

	secret := hmacSHA256([]byte("WebAppData"), []byte(botToken))
	return hex.EncodeToString(hmacSHA256(secret, []byte(strings.Join(lines, "\n"))))
}

func hmacSHA256(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

func profileFromHeaders(r *http.Request) (entities.Profile, error) {
	raw := r.Header.Get(headerUserID)
	if raw == "" {
		return entities.Profile{}, ErrUnauthorized
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return entities.Profile{}, fmt.Errorf("%w: bad %s", ErrUnauthorized, headerUserID)
	}

	return entities.NewProfile(
		id,
		r.Header.Get(headerUsername),
		r.Header.Get(headerFirstName),
		r.Header.Get(headerLastName),
	), nil
}

// authMiddleware resolves the caller from signed init data, or from plain
// headers when allowHeaders is set.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			profile entities.Profile
			err     error
		)

		switch initData := r.Header.Get(headerInitData); {
		case initData != "":
			profile, err = ValidateInitData(initData, h.cfg.BotToken)
		case h.cfg.AllowHeaderAuth:
			profile, err = profileFromHeaders(r)
		default:
			err = ErrUnauthorized
		}

		if err != nil {
			h.logger.Debug("unauthorized request",
				zap.String("request_id", getRequestID(r.Context())),
				zap.Error(err),
			)
			h.respondError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
			return
		}

		ctx := context.WithValue(r.Context(), profileKey, profile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func profileFromContext(ctx context.Context) (entities.Profile, bool) {
	p, ok := ctx.Value(profileKey).(entities.Profile)
	return p, ok
}
