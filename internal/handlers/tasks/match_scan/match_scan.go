package match_scan

import (
	"context"
	"time"

	"fleetdesk/pkg/logger"
)

type Service interface {
	ScanForMatches(ctx context.Context) (int64, error)
}

type MatchScan struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewMatchScan(log logger.Logger, service Service, interval time.Duration) *MatchScan {
	return &MatchScan{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *MatchScan) TTL() time.Duration {
	return m.interval
}

func (m *MatchScan) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	matchesFound, err := m.service.ScanForMatches(ctxWithTimeout)

	if matchesFound > 0 {
		m.log.With(
			logger.NewField("matches_found", matchesFound),
		).Info("stock match scan")
	}

	return err
}

func (m *MatchScan) Info() string {
	return "stock match scan"
}
