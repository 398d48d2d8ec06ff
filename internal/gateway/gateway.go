// Package gateway is the single chokepoint for every backend call: it
// attaches the stored credential, classifies outcomes into transport,
// domain and session failures, and evicts the credential on a 401.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/kateder/internal/metrics"
	"github.com/shrimpsizemoose/kateder/internal/session"
)

type Gateway struct {
	baseURL string
	client  *http.Client
	session session.Store

	// onExpired is the navigation collaborator: fired exactly once per
	// 401 after the credential has been wiped, so the app can route to
	// the login screen.
	onExpired func()
}

func New(baseURL string, store session.Store, onExpired func()) *Gateway {
	if onExpired == nil {
		onExpired = func() {}
	}
	return &Gateway{
		baseURL:   baseURL,
		client:    &http.Client{},
		session:   store,
		onExpired: onExpired,
	}
}

// call runs one round-trip against the backend. Body and out may be nil.
// Outcomes map onto the error taxonomy: transport failures come back as
// wrapped generic errors, 401 wipes the credential and returns
// ErrSessionExpired, any other non-2xx becomes an *APIError carrying the
// server's detail message, and a 2xx decodes into out unchanged.
func (g *Gateway) call(ctx context.Context, capability, method, path string, body, out interface{}) error {
	start := time.Now()
	defer func() {
		metrics.RequestDuration.WithLabelValues(capability, method).Observe(time.Since(start).Seconds())
	}()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if token, ok := g.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(capability, "transport").Inc()
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.RequestsTotal.WithLabelValues(capability, "unauthorized").Inc()
		metrics.SessionEvictions.Inc()
		if err := g.session.Clear(); err != nil {
			logger.Error.Printf("Failed to erase credential after 401: %v", err)
		}
		logger.Info.Printf("Session expired on %s %s, credential evicted", method, path)
		g.onExpired()
		return ErrSessionExpired
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(capability, "transport").Inc()
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RequestsTotal.WithLabelValues(capability, "domain").Inc()
		logger.Debug.Printf("%s %s -> %d: %s", method, path, resp.StatusCode, string(data))
		return &APIError{Status: resp.StatusCode, Detail: extractDetail(data, resp.StatusCode)}
	}

	metrics.RequestsTotal.WithLabelValues(capability, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// extractDetail digs the human-readable message out of an error body.
// The backend puts it under "detail"; anything unparseable falls back to
// a generic message so the user always sees something.
func extractDetail(data []byte, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return fmt.Sprintf("request failed with status %d", status)
}
