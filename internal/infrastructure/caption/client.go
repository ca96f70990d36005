package caption

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
	"sync"
	"time"

	"github.com/disintegration/imaging"

	captionRepository "pixline/internal/domain/repository/caption"
)

// prompt constrains the model to literally visible content. It is also the
// prefix stripped from echoed completions.
const prompt = "Describe only what is visually present in this image."

const fallbackCaption = "No caption generated."

// Client talks to an OpenAI-compatible vision endpoint. One instance is
// created at startup and shared by all pipeline runs; the mutex serializes
// inference calls, which keeps output independent of run interleaving.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client

	mu sync.Mutex
}

var _ captionRepository.Describer = (*Client)(nil)

func NewClient(cfg *Config) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Describe sends the image to the model and returns a short caption.
// Decoding is deterministic (temperature zero), so identical input yields
// identical output. An empty completion falls back to a fixed string.
func (c *Client) Describe(ctx context.Context, img image.Image) (string, error) {
	if c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("caption client misconfigured")
	}

	dataURI, err := encodeImage(img)
	if err != nil {
		return "", fmt.Errorf("encode image for captioning: %w", err)
	}

	body, err := json.Marshal(map[string]any{
		"model":       c.model,
		"temperature": 0,
		"max_tokens":  60,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": prompt},
					{"type": "image_url", "image_url": map[string]string{"url": dataURI}},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal caption payload: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("caption request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return "", fmt.Errorf("caption model error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode caption response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return fallbackCaption, nil
	}

	return cleanCaption(parsed.Choices[0].Message.Content), nil
}

func cleanCaption(raw string) string {
	caption := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(caption), strings.ToLower(prompt)) {
		caption = strings.Trim(caption[len(prompt):], " .:")
	}
	if caption == "" {
		return fallbackCaption
	}

	return caption
}

func encodeImage(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
