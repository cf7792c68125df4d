package nlpextract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// newExtractorImpl creates a new extraction client implementation
func newExtractorImpl(cfg Config) *extractorImpl {
	return &extractorImpl{
		baseURL:    cfg.BaseURL,
		appKey:     cfg.AppKey,
		appSecret:  cfg.AppSecret,
		httpClient: cfg.HTTPClient,
		tokens:     expirable.NewLRU[string, string](1, nil, cfg.TokenTTL),
	}
}

// Extract sends the text to the extraction endpoint and maps the reply
// into a Result. A stale or rejected token is refreshed once.
func (e *extractorImpl) Extract(ctx context.Context, text string, now time.Time) (*Result, error) {
	token, err := e.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	result, status, err := e.callExtract(ctx, token, text, now)
	if status == http.StatusUnauthorized {
		e.tokens.Remove(tokenCacheKey)
		if token, err = e.accessToken(ctx); err != nil {
			return nil, err
		}
		result, _, err = e.callExtract(ctx, token, text, now)
	}
	return result, err
}

// accessToken returns a cached token or fetches a fresh one.
func (e *extractorImpl) accessToken(ctx context.Context) (string, error) {
	if token, ok := e.tokens.Get(tokenCacheKey); ok {
		return token, nil
	}

	body, err := json.Marshal(tokenRequest{AppKey: e.appKey, AppSecret: e.appSecret})
	if err != nil {
		return "", fmt.Errorf("nlpextract: failed to marshal token request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.baseURL+tokenEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("nlpextract: failed to create token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("nlpextract: token call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("nlpextract: token error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("nlpextract: failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("nlpextract: token response missing access_token")
	}

	e.tokens.Add(tokenCacheKey, tokenResp.AccessToken)
	return tokenResp.AccessToken, nil
}

func (e *extractorImpl) callExtract(ctx context.Context, token, text string, now time.Time) (*Result, int, error) {
	body, err := json.Marshal(extractRequest{
		Text:          text,
		ReferenceTime: now.Format(time.RFC3339),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("nlpextract: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.baseURL+extractEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, fmt.Errorf("nlpextract: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("nlpextract: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, resp.StatusCode, fmt.Errorf("nlpextract: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var extractResp extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&extractResp); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("nlpextract: failed to decode response: %w", err)
	}

	return &Result{
		CleanTitle:  extractResp.Data.CleanTitle,
		Description: extractResp.Data.Description,
		Priority:    extractResp.Data.Priority,
		Owner:       extractResp.Data.Owner,
		DueDate:     extractResp.Data.DueDate,
		Confidence:  extractResp.Data.Confidence,
	}, resp.StatusCode, nil
}
