package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"finextract/pkg/config"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LLMService is a thin transport to an OpenRouter-compatible chat completions
// endpoint. It carries no per-model logic; the same request and response
// contract applies regardless of which backing model answers.
type LLMService struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	defaultModel string
	logger       *zap.Logger
}

func NewLLMService(cfg *config.OpenRouterConfig, logger *zap.Logger) *LLMService {
	return &LLMService{
		httpClient:   &http.Client{},
		baseURL:      strings.TrimRight(cfg.APIBase, "/"),
		apiKey:       cfg.APIKey,
		defaultModel: cfg.Model,
		logger:       logger,
	}
}

// DefaultModel returns the configured fallback model id.
func (s *LLMService) DefaultModel() string { return s.defaultModel }

// Extract sends one schema-constrained extraction request carrying the page
// image and returns the model's raw text. A failed call returns immediately;
// retry policy belongs to the caller.
func (s *LLMService) Extract(ctx context.Context, img image.Image, modelID string) (string, error) {
	if modelID == "" {
		modelID = s.defaultModel
	}

	reqID := uuid.New().String()
	start := time.Now()

	encoded, err := encodeImageToBase64(img)
	if err != nil {
		return "", &ExtractionError{Reason: ExtractReasonEncode, Model: modelID, Err: err}
	}

	requestBody := map[string]interface{}{
		"model": modelID,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": systemInstruction,
			},
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": extractPrompt},
					{
						"type": "image_url",
						"image_url": map[string]interface{}{
							"url": "data:image/png;base64," + encoded,
						},
					},
				},
			},
		},
		"temperature":       0.75,
		"max_tokens":        4096,
		"top_p":             1,
		"frequency_penalty": 0,
		"presence_penalty":  0,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", &ExtractionError{Reason: ExtractReasonEncode, Model: modelID, Err: err}
	}

	s.logger.Info("Extraction request",
		zap.String("req_id", reqID),
		zap.String("model", modelID),
		zap.Int("payload_bytes", len(jsonData)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", &ExtractionError{Reason: ExtractReasonTransport, Model: modelID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Extraction transport failure",
			zap.String("req_id", reqID),
			zap.Error(err),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
		return "", &ExtractionError{Reason: ExtractReasonTransport, Model: modelID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		s.logger.Error("Extraction request rejected",
			zap.String("req_id", reqID),
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(bodyBytes)),
		)
		return "", &ExtractionError{
			Reason: ExtractReasonStatus,
			Model:  modelID,
			Err:    fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)),
		}
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &ExtractionError{Reason: ExtractReasonEmpty, Model: modelID, Err: err}
	}
	if len(chatResp.Choices) == 0 {
		return "", &ExtractionError{Reason: ExtractReasonEmpty, Model: modelID}
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return "", &ExtractionError{Reason: ExtractReasonNoContent, Model: modelID}
	}

	s.logger.Info("Extraction response received",
		zap.String("req_id", reqID),
		zap.String("model", modelID),
		zap.Int("content_length", len(content)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return content, nil
}

func encodeImageToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode page image as PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
