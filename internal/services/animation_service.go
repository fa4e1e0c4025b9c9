package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// maxAnimationBytes caps the animation payload we will hold in memory.
const maxAnimationBytes = 4 << 20

// AnimationService fetches the header animation JSON from its upstream URL
// and caches it for the lifetime of the process. Fetch failures are not
// fatal: the dashboard renders without the animation.
type AnimationService struct {
	url    string
	client *http.Client
	logger *slog.Logger

	mu     sync.Mutex
	cached json.RawMessage
}

// NewAnimationService creates the service for the given URL. An empty URL
// disables the animation entirely.
func NewAnimationService(url string, logger *slog.Logger) *AnimationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnimationService{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With(slog.String("component", "animation_service")),
	}
}

// Animation returns the cached animation JSON, fetching it on first use.
// ErrAnimationUnavailable is returned when no animation can be served.
func (s *AnimationService) Animation(ctx context.Context) (json.RawMessage, error) {
	if s.url == "" {
		return nil, ErrAnimationUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	data, err := s.fetch(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "animation fetch failed, continuing without it",
			slog.String("url", s.url),
			slog.String("error", err.Error()))
		return nil, ErrAnimationUnavailable
	}

	s.cached = data
	s.logger.InfoContext(ctx, "animation cached",
		slog.String("url", s.url),
		slog.Int("bytes", len(data)))
	return s.cached, nil
}

func (s *AnimationService) fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAnimationBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) > maxAnimationBytes {
		return nil, fmt.Errorf("payload exceeds %d bytes", maxAnimationBytes)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}
	return json.RawMessage(data), nil
}
