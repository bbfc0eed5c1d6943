package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/quicksplit/internal/models"
)

// Places is the number of decimal places every share is rounded to.
const Places = 2

var (
	ErrInvalidTotal    = errors.New("total must be greater than zero")
	ErrNoParticipants  = errors.New("must have at least one participant")
	ErrEmptyName       = errors.New("participant name cannot be empty")
	ErrUnknownMode     = errors.New("unknown split mode")
	ErrInvalidWeight   = errors.New("weight cannot be negative")
	ErrZeroTotalWeight = errors.New("total weight cannot be zero")
)

// Validate checks the preconditions shared by every mode. A request that
// fails validation must not be split.
func Validate(req models.SplitRequest) error {
	if !req.Total.IsPositive() {
		return ErrInvalidTotal
	}
	if len(req.Participants) == 0 {
		return ErrNoParticipants
	}
	for i, p := range req.Participants {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("participant %d: %w", i+1, ErrEmptyName)
		}
	}
	if !req.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(req.Mode))
	}
	return nil
}

// CalculateSplit computes how much each participant owes.
//
// Every share is rounded on its own to 2 decimal places, half away from
// zero. There is no remainder pass, so in equal and shares mode the shares
// can add up to slightly more or less than the total.
//
//   - equal:   share = total / count
//   - shares:  share_i = total × weight_i / Σweight
//   - amounts: share_i = amount_i (negative amounts count as zero)
func CalculateSplit(req models.SplitRequest) (models.Allocation, error) {
	if err := Validate(req); err != nil {
		return models.Allocation{}, err
	}

	var (
		shares []models.Share
		err    error
	)
	switch req.Mode {
	case models.ModeEqual:
		shares = splitEqual(req.Total, req.Participants)
	case models.ModeShares:
		shares, err = splitByWeight(req.Total, req.Participants)
	case models.ModeAmounts:
		shares = splitByAmount(req.Participants)
	}
	if err != nil {
		return models.Allocation{}, err
	}

	return models.Allocation{
		Mode:   req.Mode,
		Total:  req.Total,
		Shares: shares,
	}, nil
}

func splitEqual(total decimal.Decimal, participants []models.Participant) []models.Share {
	perPerson := total.DivRound(decimal.NewFromInt(int64(len(participants))), Places)

	shares := make([]models.Share, len(participants))
	for i, p := range participants {
		shares[i] = models.Share{Name: p.Name, Amount: perPerson}
	}
	return shares
}

func splitByWeight(total decimal.Decimal, participants []models.Participant) ([]models.Share, error) {
	totalWeight := decimal.Zero
	for i, p := range participants {
		if p.Weight.IsNegative() {
			return nil, fmt.Errorf("participant %d (%s): %w", i+1, p.Name, ErrInvalidWeight)
		}
		totalWeight = totalWeight.Add(p.Weight)
	}
	if totalWeight.IsZero() {
		return nil, ErrZeroTotalWeight
	}

	shares := make([]models.Share, len(participants))
	for i, p := range participants {
		shares[i] = models.Share{
			Name:   p.Name,
			Amount: total.Mul(p.Weight).DivRound(totalWeight, Places),
		}
	}
	return shares, nil
}

func splitByAmount(participants []models.Participant) []models.Share {
	shares := make([]models.Share, len(participants))
	for i, p := range participants {
		amount := p.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		shares[i] = models.Share{Name: p.Name, Amount: amount.Round(Places)}
	}
	return shares
}
