// Package imagegen calls the external illustration service. Only the returned
// image URL is kept; the service itself is an external collaborator.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrNoImage = errors.New("image service returned no image")

type Generator interface {
	SpecialtyIcon(ctx context.Context, specialtyName string) (string, error)
	NewsImage(ctx context.Context, title, category string) (string, error)
}

type generateRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type generateResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) SpecialtyIcon(ctx context.Context, specialtyName string) (string, error) {
	prompt := fmt.Sprintf(
		"A simple, clear medical icon representing %s specialty. Minimalist, friendly design with medical symbols. High contrast, easy to understand for elderly patients.",
		specialtyName,
	)
	return c.generate(ctx, prompt)
}

func (c *Client) NewsImage(ctx context.Context, title, category string) (string, error) {
	prompt := fmt.Sprintf(
		"Illustration for health news article titled %q in category %s. Warm, educational, accessible style showing diverse Brazilian people in healthcare context. Positive, encouraging mood.",
		title, category,
	)
	return c.generate(ctx, prompt)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:   "dall-e-3",
		Prompt:  "Medical illustration in a friendly, modern, accessible style: " + prompt,
		N:       1,
		Size:    "1024x1024",
		Quality: "standard",
	})
	if err != nil {
		return "", fmt.Errorf("marshal image request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call image service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image service returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode image response: %w", err)
	}
	if len(out.Data) == 0 || out.Data[0].URL == "" {
		return "", ErrNoImage
	}

	return out.Data[0].URL, nil
}
