// Package form holds the editable state of one split form and decides when
// a split may be computed.
//
// Raw text from input fields is coerced here: an empty or unparsable total
// or count is "unset", an invalid weight falls back to 1 and an invalid
// amount falls back to 0. A split is only attempted when the total is
// positive, there is at least one participant and every participant has a
// name. When that is not the case, or the split itself fails, the previous
// result is kept.
package form

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mmynk/quicksplit/internal/models"
)

// DefaultMaxParticipants caps the participant count when none is configured.
const DefaultMaxParticipants = 50

// ErrIncomplete is returned by Split when the form is not ready to split.
var ErrIncomplete = errors.New("form incomplete: need a positive total, a participant count and every name")

// Splitter computes an allocation. *service.SplitService satisfies it.
type Splitter interface {
	Split(ctx context.Context, req models.SplitRequest) (models.Allocation, error)
}

// Form is safe for concurrent use.
type Form struct {
	splitter        Splitter
	maxParticipants int

	mu           sync.Mutex
	total        decimal.NullDecimal
	mode         models.SplitMode
	participants []models.Participant
	result       models.Allocation
	hasResult    bool
}

// New creates an empty form. maxParticipants <= 0 uses DefaultMaxParticipants.
func New(splitter Splitter, mode models.SplitMode, maxParticipants int) *Form {
	if maxParticipants <= 0 {
		maxParticipants = DefaultMaxParticipants
	}
	return &Form{
		splitter:        splitter,
		maxParticipants: maxParticipants,
		mode:            mode,
	}
}

// SetTotal parses the total expense. Empty or invalid input unsets it.
func (f *Form) SetTotal(raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		f.total = decimal.NullDecimal{}
		return
	}
	f.total = decimal.NewNullDecimal(v)
}

// SetCount parses the participant count. A new count replaces every
// participant with a fresh default one; invalid, non-positive or too large
// counts clear the list. It reports whether the participant list changed.
func (f *Form) SetCount(raw string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 || n > f.maxParticipants {
		n = 0
	}
	if n == len(f.participants) {
		return false
	}
	f.resetParticipants(n)
	return true
}

// SetMode switches the split mode. Participants are recreated with defaults.
func (f *Form) SetMode(mode models.SplitMode) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mode = mode
	f.resetParticipants(len(f.participants))
}

func (f *Form) resetParticipants(n int) {
	if n == 0 {
		f.participants = nil
		return
	}
	f.participants = make([]models.Participant, n)
	for i := range f.participants {
		f.participants[i] = models.NewParticipant("")
	}
}

// SetName sets participant i's name. Out of range indexes are ignored.
func (f *Form) SetName(i int, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i < 0 || i >= len(f.participants) {
		return
	}
	f.participants[i].Name = strings.TrimSpace(raw)
}

// SetWeight sets participant i's weight. Invalid or non-positive input
// becomes 1 so the total weight is always positive.
func (f *Form) SetWeight(i int, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i < 0 || i >= len(f.participants) {
		return
	}
	w, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !w.IsPositive() {
		w = decimal.NewFromInt(1)
	}
	f.participants[i].Weight = w
}

// SetAmount sets participant i's explicit amount. Invalid or negative
// input becomes 0.
func (f *Form) SetAmount(i int, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i < 0 || i >= len(f.participants) {
		return
	}
	a, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || a.IsNegative() {
		a = decimal.Zero
	}
	f.participants[i].Amount = a
}

// Mode returns the current split mode.
func (f *Form) Mode() models.SplitMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Count returns the number of participants.
func (f *Form) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.participants)
}

// Participants returns a copy of the participant list.
func (f *Form) Participants() []models.Participant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Participant(nil), f.participants...)
}

// Snapshot returns a consistent copy of the form as a split request. The
// second value is false when the form is not ready to split.
func (f *Form) Snapshot() (models.SplitRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Form) snapshotLocked() (models.SplitRequest, bool) {
	req := models.SplitRequest{
		Mode:         f.mode,
		Participants: append([]models.Participant(nil), f.participants...),
	}
	if f.total.Valid {
		req.Total = f.total.Decimal
	}
	if !f.total.Valid || !f.total.Decimal.IsPositive() || len(f.participants) == 0 {
		return req, false
	}
	for _, p := range f.participants {
		if p.Name == "" {
			return req, false
		}
	}
	return req, true
}

// Split computes an allocation from the current form state. The previous
// result is replaced only on success.
func (f *Form) Split(ctx context.Context) (models.Allocation, error) {
	f.mu.Lock()
	req, ok := f.snapshotLocked()
	f.mu.Unlock()

	if !ok {
		return models.Allocation{}, ErrIncomplete
	}
	alloc, err := f.splitter.Split(ctx, req)
	if err != nil {
		return models.Allocation{}, err
	}

	f.mu.Lock()
	f.result = alloc
	f.hasResult = true
	f.mu.Unlock()
	return alloc, nil
}

// Result returns the last successful allocation.
func (f *Form) Result() (models.Allocation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.hasResult
}
