// httpclient/retry.go
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/concurrency"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/headers"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/ratehandler"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/response"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/status"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/version"
	"go.uber.org/zap"
)

// executeRequestWithRetries runs the attempt loop for one page. retryCount is shared by
// every retry cause: 429s, refresh-triggered retries after a 401 and transport errors.
//
//   - 429: count the retry; fail with RateLimitExceededError once the count passes
//     MaxRetries, otherwise wait Retry-After (or 2s per retry) and go again.
//   - 401 with a refreshable bearer token: refresh, count the retry, go again at once.
//   - other non-2xx: an *response.APIError, never retried.
//   - transport error, including a connection lost while reading a 2xx body: returned
//     as-is once MaxRetries is reached, otherwise wait 1s per retry and go again.
func (c *Client) executeRequestWithRetries(ctx context.Context, method, path string, payload []byte, log logger.Logger) (*response.Envelope, error) {
	maxRetries := *c.config.MaxRetries
	requestID := requestIDString(ctx)
	endpoint := c.config.BaseURL + path
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}

	retryCount := 0
	for retryCount <= maxRetries {
		if err := c.governor.Wait(ctx); err != nil {
			return nil, waitError(err)
		}

		usedAccessToken := c.auth.CurrentAccessToken()
		resp, err := c.doRequest(ctx, method, endpoint, payload, retryCount+1, log)
		if err != nil {
			if err := c.backOffTransportError(ctx, err, &retryCount, maxRetries, method, endpoint, log); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case status.IsRateLimited(resp.StatusCode):
			discardBody(resp)
			retryCount++
			c.Concurrency.Metrics.RecordRateLimit()
			wait, retryAfter := ratehandler.RateLimitWait(resp.Header, retryCount, c.clock.Now())
			if retryCount > maxRetries {
				log.Warn("Rate limit retries exhausted", zap.String("method", method), zap.String("url", endpoint), zap.Int("attempts", retryCount))
				return nil, &RateLimitExceededError{Attempts: retryCount, RetryAfter: retryAfter}
			}
			c.Concurrency.Metrics.RecordRetry()
			c.Logger.LogRateLimiting(requestID, method, endpoint, retryAfter, wait)
			if err := c.clock.Sleep(ctx, wait); err != nil {
				return nil, waitError(err)
			}
			continue

		case status.IsUnauthorized(resp.StatusCode) && c.auth.CanRefresh():
			body := bufferBody(resp)
			if c.auth.RefreshAfterUnauthorized(ctx, usedAccessToken) {
				retryCount++
				c.Concurrency.Metrics.RecordRetry()
				c.Logger.LogRetryAttempt(requestID, method, endpoint, retryCount, "token_refreshed", 0, nil)
				continue
			}
			resp.Body = io.NopCloser(bytes.NewReader(body))
			return nil, response.HandleAPIErrorResponse(resp, log)

		case !status.IsSuccess(resp.StatusCode):
			if status.IsRedirectStatusCode(resp.StatusCode) {
				log.Warn("Redirect not followed", zap.Int("status_code", resp.StatusCode), zap.String("location", resp.Header.Get("Location")))
			}
			return nil, response.HandleAPIErrorResponse(resp, log)

		default:
			headers.CheckDeprecationHeader(resp, log)
			envelope, err := response.HandleAPISuccessResponse(resp, log)
			var readErr *response.BodyReadError
			if errors.As(err, &readErr) {
				if err := c.backOffTransportError(ctx, readErr.Err, &retryCount, maxRetries, method, endpoint, log); err != nil {
					return nil, err
				}
				continue
			}
			return envelope, err
		}
	}

	return nil, &ExhaustedRetriesError{Attempts: retryCount}
}

// backOffTransportError counts a transport failure against the retry budget and sleeps
// before the next attempt. A non-nil return is final: cause itself once the budget is
// spent or the context is done, or the error that interrupted the sleep.
func (c *Client) backOffTransportError(ctx context.Context, cause error, retryCount *int, maxRetries int, method, endpoint string, log logger.Logger) error {
	if ctx.Err() != nil {
		return cause
	}
	if *retryCount >= maxRetries {
		log.Warn("Max retry attempts reached", zap.String("method", method), zap.String("url", endpoint), zap.Error(cause))
		return cause
	}
	*retryCount++
	wait := ratehandler.TransientBackoff(*retryCount)
	c.Concurrency.Metrics.RecordRetry()
	c.Logger.LogRetryAttempt(requestIDString(ctx), method, endpoint, *retryCount, "transport_error", wait, cause)
	if err := c.clock.Sleep(ctx, wait); err != nil {
		return waitError(err)
	}
	return nil
}

// doRequest sends one physical attempt.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, payload []byte, attempt int, log logger.Logger) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	headerHandler := headers.NewHeaderHandler(req, log, c.auth)
	headerHandler.SetRequestHeaders(version.GetUserAgentHeader())
	headerHandler.LogHeaders(c.config.HideSensitiveData)

	requestID := requestIDString(ctx)
	c.Concurrency.Metrics.RecordAttempt()
	c.Logger.LogRequestStart(requestID, method, endpoint, attempt)

	start := c.clock.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	c.Logger.LogRequestEnd(requestID, method, endpoint, resp.StatusCode, c.clock.Now().Sub(start))
	return resp, nil
}

func requestIDString(ctx context.Context) string {
	if id, ok := concurrency.RequestIDFromContext(ctx); ok {
		return id.String()
	}
	return ""
}

func discardBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// bufferBody reads and closes the body so the connection is released while a refresh runs.
func bufferBody(resp *http.Response) []byte {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return body
}
