package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/quicksplit/internal/calculator"
	"github.com/mmynk/quicksplit/internal/metrics"
	"github.com/mmynk/quicksplit/internal/models"
)

// SplitService is the single entry point for computing a split.
type SplitService struct {
	metrics *metrics.Collector
}

// NewSplitService creates a SplitService. m may be nil.
func NewSplitService(m *metrics.Collector) *SplitService {
	return &SplitService{metrics: m}
}

// rejectReason maps a calculator error to a metrics label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, calculator.ErrInvalidTotal):
		return metrics.ReasonInvalidTotal
	case errors.Is(err, calculator.ErrNoParticipants):
		return metrics.ReasonNoParticipants
	case errors.Is(err, calculator.ErrEmptyName):
		return metrics.ReasonEmptyName
	case errors.Is(err, calculator.ErrInvalidWeight):
		return metrics.ReasonInvalidWeight
	case errors.Is(err, calculator.ErrZeroTotalWeight):
		return metrics.ReasonZeroWeight
	case errors.Is(err, calculator.ErrUnknownMode):
		return metrics.ReasonUnknownMode
	default:
		return metrics.ReasonOther
	}
}

// Split validates req and computes its allocation.
func (s *SplitService) Split(ctx context.Context, req models.SplitRequest) (models.Allocation, error) {
	slog.DebugContext(ctx, "Split requested",
		"mode", req.Mode.String(),
		"total", req.Total.String(),
		"participants", len(req.Participants),
	)

	alloc, err := calculator.CalculateSplit(req)
	if err != nil {
		reason := rejectReason(err)
		s.metrics.SplitRejected(reason)
		slog.WarnContext(ctx, "Split rejected", "mode", req.Mode.String(), "reason", reason, "error", err)
		return models.Allocation{}, fmt.Errorf("calculate split: %w", err)
	}

	for i, share := range alloc.Shares {
		slog.DebugContext(ctx, "Person share",
			"index", i+1,
			"person", share.Name,
			"amount", share.Amount.StringFixed(calculator.Places),
		)
	}
	s.metrics.SplitComputed(req.Mode.String())
	slog.InfoContext(ctx, "Split computed",
		"mode", req.Mode.String(),
		"participants", len(alloc.Shares),
		"sum", alloc.Sum().StringFixed(calculator.Places),
	)

	return alloc, nil
}
