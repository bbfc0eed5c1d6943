package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SplitMode selects how a total is allocated among participants.
type SplitMode int

const (
	// ModeEqual gives every participant the same share of the total.
	ModeEqual SplitMode = iota
	// ModeShares allocates the total in proportion to each participant's weight.
	ModeShares
	// ModeAmounts uses each participant's explicitly entered amount.
	ModeAmounts
)

// Modes lists every split mode in display order.
var Modes = []SplitMode{ModeEqual, ModeShares, ModeAmounts}

// String returns the canonical lower-case name of the mode.
func (m SplitMode) String() string {
	switch m {
	case ModeEqual:
		return "equal"
	case ModeShares:
		return "shares"
	case ModeAmounts:
		return "amounts"
	default:
		return fmt.Sprintf("SplitMode(%d)", int(m))
	}
}

// Label returns the tab label shown to users.
func (m SplitMode) Label() string {
	switch m {
	case ModeEqual:
		return "By People"
	case ModeShares:
		return "By Shares"
	case ModeAmounts:
		return "By Amount"
	default:
		return m.String()
	}
}

// Valid reports whether m is one of the known modes.
func (m SplitMode) Valid() bool {
	return m >= ModeEqual && m <= ModeAmounts
}

// ParseSplitMode parses a mode name. Matching is case-insensitive and
// accepts the tab names used by the form ("people", "share", "amount").
func ParseSplitMode(s string) (SplitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equal", "people":
		return ModeEqual, nil
	case "shares", "share":
		return ModeShares, nil
	case "amounts", "amount":
		return ModeAmounts, nil
	default:
		return ModeEqual, fmt.Errorf("unknown split mode %q", s)
	}
}

// Participant is one person taking part in a split.
type Participant struct {
	// Name identifies the participant in the result. Must be non-empty
	// before a split can be computed.
	Name string

	// Weight is the participant's relative share in ModeShares.
	// Defaults to 1 and is kept positive by the form.
	Weight decimal.Decimal

	// Amount is the participant's explicit amount in ModeAmounts.
	// Defaults to 0.
	Amount decimal.Decimal
}

// NewParticipant returns a participant with default weight 1 and amount 0.
func NewParticipant(name string) Participant {
	return Participant{
		Name:   name,
		Weight: decimal.NewFromInt(1),
		Amount: decimal.Zero,
	}
}

// SplitRequest is everything the calculator needs for one computation.
type SplitRequest struct {
	// Total is the expense being split. Must be positive.
	Total decimal.Decimal

	// Mode is the allocation strategy.
	Mode SplitMode

	// Participants in display order. The result preserves this order.
	Participants []Participant
}

// Share is one participant's computed amount.
type Share struct {
	Name   string
	Amount decimal.Decimal
}

// Allocation is the result of a split: one share per participant, in the
// order the participants were given, each rounded to 2 decimal places.
type Allocation struct {
	Mode   SplitMode
	Total  decimal.Decimal
	Shares []Share
}

// Empty reports whether the allocation holds no shares.
func (a Allocation) Empty() bool {
	return len(a.Shares) == 0
}

// Sum adds up all shares. In equal and shares mode this may differ from
// Total by rounding; in amounts mode it is unrelated to Total.
func (a Allocation) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range a.Shares {
		sum = sum.Add(s.Amount)
	}
	return sum
}
