package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4.1-mini"
)

var (
	ErrEmptyResponse     = errors.New("empty completion")
	ErrMalformedResponse = errors.New("malformed completion")
)

// Config holds the generator settings.
type Config struct {
	APIKey         string
	Model          string
	BaseURL        string
	Timeout        time.Duration
	SourceLanguage string
	TargetLanguage string
}

// Generator produces flashcard content through the OpenAI Chat Completions API.
type Generator struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// NewGenerator creates a new Generator. Empty model and base URL fall
// back to the defaults.
func NewGenerator(cfg Config, logger *zap.Logger) *Generator {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Generator{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []message      `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// cardPayload is the JSON object the model is asked to return.
type cardPayload struct {
	SourceText         string  `json:"source_text"`
	TargetText         string  `json:"target_text"`
	ExampleSentence    string  `json:"example_sentence"`
	ExampleTranslation string  `json:"example_translation"`
	PartOfSpeech       *string `json:"part_of_speech"`
}

// Generate asks the model for card content for word.
func (g *Generator) Generate(ctx context.Context, word string) (*entities.CardContent, error) {
	request := chatRequest{
		Model: g.cfg.Model,
		Messages: []message{
			{Role: "system", Content: g.systemPrompt()},
			{Role: "user", Content: word},
		},
		Temperature:    0.2,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	g.logger.Debug("completion received",
		zap.String("word", word),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	var response chatResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if response.Error != nil {
		return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, response.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if len(response.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return parseCard(response.Choices[0].Message.Content)
}

func (g *Generator) systemPrompt() string {
	return fmt.Sprintf(
		"You are a professional %[2]s language teacher. The learner's native language is %[1]s. "+
			"The user sends one word or short phrase written in either language. "+
			"Reply with a JSON object with these string fields: "+
			"source_text (the word in %[1]s, dictionary form), "+
			"target_text (its %[2]s translation, with article for nouns), "+
			"example_sentence (a short natural sentence in %[2]s using it), "+
			"example_translation (that sentence in %[1]s), "+
			"part_of_speech (noun, verb, adjective and so on, or null).",
		languageName(g.cfg.SourceLanguage), languageName(g.cfg.TargetLanguage),
	)
}

func parseCard(raw string) (*entities.CardContent, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	var p cardPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if strings.TrimSpace(p.TargetText) == "" {
		return nil, fmt.Errorf("%w: target_text is empty", ErrMalformedResponse)
	}

	if p.PartOfSpeech != nil && strings.TrimSpace(*p.PartOfSpeech) == "" {
		p.PartOfSpeech = nil
	}

	return &entities.CardContent{
		SourceText:         strings.TrimSpace(p.SourceText),
		TargetText:         strings.TrimSpace(p.TargetText),
		ExampleSentence:    strings.TrimSpace(p.ExampleSentence),
		ExampleTranslation: strings.TrimSpace(p.ExampleTranslation),
		PartOfSpeech:       p.PartOfSpeech,
	}, nil
}

var languageNames = map[string]string{
	"ru": "Russian",
	"el": "Modern Greek",
	"en": "English",
	"de": "German",
	"es": "Spanish",
	"fr": "French",
}

func languageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}
