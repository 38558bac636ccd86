// Package render calls the external document-rendering service used for
// profile exports.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// Client implements ports.ProfileRenderer over HTTP. The render service
// accepts profile data as JSON and responds with the URL of the generated
// document.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a new render service client
func NewClient(baseURL string, logger *zap.Logger) ports.ProfileRenderer {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		logger:     logger,
	}
}

type renderResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Render submits the profile for rendering and returns the document URL
func (c *Client) Render(ctx context.Context, req ports.RenderRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to encode render request").WithCause(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(payload))
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to build render request").WithCause(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Render service unreachable", zap.Error(err))
		return "", pkgerrors.NewExternalError("render service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", pkgerrors.NewExternalError("render service", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Render service returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", pkgerrors.NewExternalError("render service",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var rendered renderResponse
	if err := json.Unmarshal(body, &rendered); err != nil {
		return "", pkgerrors.NewExternalError("render service", err)
	}
	if rendered.URL == "" {
		return "", pkgerrors.NewExternalError("render service",
			fmt.Errorf("response missing document url"))
	}

	return rendered.URL, nil
}
