package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fleetdesk/internal/entities"
	retrierconfig "fleetdesk/pkg/retrier"
	"fleetdesk/pkg/retrier/backoff_adapter"
)

const meEndpoint = "/v1/me"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// statusError нужен чтобы ShouldRetry видел код ответа.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("identity provider returned %d", e.code)
}

// Gateway резолвит bearer-токен в пользователя через внешний identity provider.
type Gateway struct {
	client  httpClient
	baseURL string
	retrier retrier
}

func New(client httpClient, baseURL string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	var resp meResponse

	err := g.executeWithMetrics(ctx, "CurrentUser", func(ctx context.Context) error {
		return g.fetchMe(ctx, token, &resp)
	})
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			return nil, ErrUnauthenticated
		}

		return nil, fmt.Errorf("gateway identity, current user: %w", err)
	}

	return toDomain(&resp)
}

func (g *Gateway) fetchMe(ctx context.Context, token string, out *meResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+meEndpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthenticated
	default:
		return &statusError{code: resp.StatusCode}
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func isRetryableError(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}

	return false
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}
	if errors.Is(err, ErrUnauthenticated) {
		return "401"
	}

	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}

	return "unknown"
}
