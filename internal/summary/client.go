// Package summary produces short summaries of a vehicle's maintenance notes
// through a hosted text-generation API.
//
// The service handle is acquired lazily inside each call, never at startup,
// so a missing credential degrades this one feature instead of aborting the
// process. Every failure path returns a literal explanatory string; no error
// crosses this boundary.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Degradation messages shown in place of a summary.
const (
	MsgNoNotes    = "No notes to summarize."
	MsgNoAPIKey   = "Summaries are unavailable: no API key is configured."
	MsgAPIFailure = "Could not generate summary due to an API error."
)

// Client calls a Gemini-style generateContent endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// New creates a Client. An empty apiKey is allowed; Summarize degrades per
// call rather than failing construction.
func New(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// generateRequest is the JSON body for POST models/{model}:generateContent.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse holds the fields we read from the API response.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize returns a short summary of the given notes, or a descriptive
// placeholder when the notes are empty, the credential is missing, or the
// API call fails.
func (c *Client) Summarize(ctx context.Context, notes string) string {
	if strings.TrimSpace(notes) == "" {
		return MsgNoNotes
	}
	if c.apiKey == "" {
		return MsgNoAPIKey
	}

	prompt := fmt.Sprintf(
		"Summarize the following vehicle maintenance notes in a few bullet points:\n\n---\n%s\n---",
		notes)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		slog.Error("summary request encode failed", "error", err)
		return MsgAPIFailure
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		slog.Error("summary request build failed", "error", err)
		return MsgAPIFailure
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("summary request failed", "error", err)
		return MsgAPIFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("summary request rejected", "status", resp.StatusCode)
		return MsgAPIFailure
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Error("summary response decode failed", "error", err)
		return MsgAPIFailure
	}

	var b strings.Builder
	for _, cand := range result.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	if b.Len() == 0 {
		return MsgAPIFailure
	}
	return b.String()
}
