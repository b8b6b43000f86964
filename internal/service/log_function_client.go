package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/models"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

// maxFunctionResponseSize bounds how much of a function response is read.
const maxFunctionResponseSize = 64 << 10

// HTTPLogFunctionClient calls the password-reset logging function over HTTP.
type HTTPLogFunctionClient struct {
	url        string
	anonKey    string
	clientInfo string
	httpClient *http.Client
}

// NewHTTPLogFunctionClient creates a client for the function at cfg.URL.
// clientInfo is sent as X-Client-Info when not empty.
func NewHTTPLogFunctionClient(cfg *config.LogFunctionSettings, clientInfo string) *HTTPLogFunctionClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultLogFunctionTimeout
	}

	return &HTTPLogFunctionClient{
		url:        cfg.URL,
		anonKey:    cfg.AnonKey,
		clientInfo: clientInfo,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// LogPasswordReset sends entry to the logging function.
// Failures are returned as upstream errors whose message can be shown to the user.
// Any 2xx response is a success, whether or not its body decodes.
func (c *HTTPLogFunctionClient) LogPasswordReset(ctx context.Context, entry *models.PasswordResetLogEntry) (*models.LogAcknowledgement, error) {
	body, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to encode log entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build log function request: %w", err)
	}
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	if c.anonKey != "" {
		req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+c.anonKey)
		req.Header.Set(constants.HeaderAPIKey, c.anonKey)
	}
	if c.clientInfo != "" {
		req.Header.Set(constants.HeaderClientInfo, c.clientInfo)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", c.url).Msg("Log function request failed")
		return nil, utils.NewUpstreamError(constants.MsgFunctionUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxFunctionResponseSize))
	if err != nil {
		return nil, utils.NewUpstreamError(constants.MsgFunctionUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := constants.MsgFunctionNon2xx
		var failure models.LogFailure
		if json.Unmarshal(respBody, &failure) == nil && failure.Error != "" {
			message = failure.Error
		}
		return nil, utils.NewUpstreamError(message, fmt.Errorf("log function returned status %d", resp.StatusCode))
	}

	// Any 2xx counts as logged; the acknowledgement body is informational
	var ack models.LogAcknowledgement
	if err := json.Unmarshal(respBody, &ack); err != nil {
		log.Debug().Err(err).Int("status", resp.StatusCode).Msg("Log function acknowledgement was not JSON")
	}

	return &ack, nil
}
