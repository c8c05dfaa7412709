package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/pkg/logger"
)

const (
	defaultBatchSize = 5
	maxBatchSize     = 20
)

// Service processes the send queue in FIFO order.
type Service struct {
	repo   Repository
	sender Sender
	locker Locker // nil disables cross-process serialization
}

// NewService creates a queue processor. locker may be nil.
func NewService(repo Repository, sender Sender, locker Locker) *Service {
	return &Service{repo: repo, sender: sender, locker: locker}
}

// ItemResult reports the terminal status of one processed item.
type ItemResult struct {
	ID     string             `json:"id"`
	Status domain.QueueStatus `json:"status"`
	Error  string             `json:"error,omitempty"`
}

// Result sums one queue pass. Processed counts every attempted item, sent
// or errored; per-item outcomes are in Results.
type Result struct {
	Processed int          `json:"processed"`
	Results   []ItemResult `json:"results"`
}

// Process drains up to batchSize queued items, oldest scheduled first.
// batchSize is clamped to [1, 20] with 0 meaning the default of 5. When a
// locker is configured and the lock is held elsewhere, the pass is a no-op.
func (s *Service) Process(ctx context.Context, batchSize int) (*Result, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if batchSize > maxBatchSize {
		batchSize = maxBatchSize
	}

	if s.locker != nil {
		ok, err := s.locker.Acquire(ctx)
		if err != nil {
			return nil, fmt.Errorf("acquiring queue lock: %w", err)
		}
		if !ok {
			logger.Info("queue pass skipped, lock held elsewhere")
			return &Result{Results: []ItemResult{}}, nil
		}
		defer func() {
			if err := s.locker.Release(ctx); err != nil {
				logger.Warn("releasing queue lock", "err", err)
			}
		}()
	}

	items, err := s.repo.NextQueued(ctx, batchSize)
	if err != nil {
		return nil, fmt.Errorf("fetching queued items: %w", err)
	}

	out := &Result{Results: make([]ItemResult, 0, len(items))}
	for _, item := range items {
		out.Results = append(out.Results, s.processItem(ctx, item))
	}
	out.Processed = len(out.Results)
	return out, nil
}

func (s *Service) processItem(ctx context.Context, item domain.QueueItem) ItemResult {
	if err := s.sender.SendMessage(ctx, item.LinkedInURL, item.Message); err != nil {
		logger.Error("queue send failed", "item_id", item.ID,
			"profile_url", logger.RedactProfileURL(item.LinkedInURL), "err", err)
		if markErr := s.repo.MarkError(ctx, item.ID, err.Error()); markErr != nil {
			logger.Error("marking queue item error", "item_id", item.ID, "err", markErr)
		}
		return ItemResult{ID: item.ID, Status: domain.QueueError, Error: err.Error()}
	}

	if err := s.repo.MarkSent(ctx, item.ID, time.Now().UTC()); err != nil {
		logger.Error("marking queue item sent", "item_id", item.ID, "err", err)
		return ItemResult{ID: item.ID, Status: domain.QueueError, Error: err.Error()}
	}
	logger.Info("queue item sent", "item_id", item.ID,
		"profile_url", logger.RedactProfileURL(item.LinkedInURL))
	return ItemResult{ID: item.ID, Status: domain.QueueSent}
}
