package services

import (
	"fmt"
	"math"

	"skyrio/internal/domain"
	"skyrio/internal/domain/models"
	"skyrio/internal/utils"
)

const (
	defaultTripDays = 3

	// maxAmount bounds every dollar input so derived amounts stay well inside int64.
	maxAmount = 1e12

	typicalLow  = 780
	typicalHigh = 1200
	quickStart  = 210

	tightPerDay   = 35
	onTrackPerDay = 80

	smoothPercent = 55
	steadyPercent = 85

	diningShare     = 0.25
	transportShare  = 0.15
	activitiesShare = 0.20
)

// BudgetService computes trip budget pacing and the Atlas suggestion text
// shown next to the budget ring.
type BudgetService struct{}

func (BudgetService) Pace(in models.BudgetInput) (models.BudgetPace, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"planned", in.Planned},
		{"used", in.Used},
		{"bookingTotal", in.BookingTotal},
	} {
		if f.value < 0 {
			return models.BudgetPace{}, domain.ValidationError{Field: f.name, Msg: "must not be negative"}
		}
		if f.value > maxAmount {
			return models.BudgetPace{}, domain.ValidationError{Field: f.name, Msg: "must not exceed 1,000,000,000,000"}
		}
	}

	days := tripDays(in.TripDays)

	p := in.Planned
	spent := in.Used + in.BookingTotal
	out := models.BudgetPace{
		Planned:   p,
		Spent:     spent,
		HasBudget: p > 0,
		TripDays:  days,
	}
	if out.HasBudget {
		out.Left = p - spent
		out.Percent = int(min(100, max(0, math.Round(spent/p*100))))
		out.OverBudget = spent > p
		out.PerDay = out.Left / days
	}
	out.MoodLabel = moodLabel(out)
	out.Suggestion = suggest(p, in.BookingTotal, out.Left, out.PerDay, days)
	return out, nil
}

// tripDays defaults an absent value to 3; null, zero and anything below
// one count as a single day. Fractional days are kept.
func tripDays(v models.NullableFloat) float64 {
	if !v.Present {
		return defaultTripDays
	}
	if !v.Valid {
		return 1
	}
	return max(1, v.Value)
}

func moodLabel(p models.BudgetPace) string {
	switch {
	case !p.HasBudget:
		return "Set your trip budget"
	case p.OverBudget:
		return "Over budget — Atlas can fix it"
	case p.Percent < smoothPercent:
		return "You’re on track ✨"
	case p.Percent < steadyPercent:
		return "Still smooth — keep it steady"
	default:
		return "Last stretch — watch extras"
	}
}

func suggest(planned, bookingTotal, left, perDay, days float64) models.Suggestion {
	if planned <= 0 {
		start := max(quickStart, int64(math.Ceil(bookingTotal*1.25)))
		return models.Suggestion{
			Title: "Set a budget and Atlas will pace the trip for you.",
			Detail: fmt.Sprintf("Most travelers land around %s–%s. Pick a number and I’ll keep your spending smooth.",
				utils.FormatDollars(typicalLow), utils.FormatDollars(typicalHigh)),
			Hint:    fmt.Sprintf("Quick start: try %s.", utils.FormatDollars(start)),
			Tone:    models.ToneNeutral,
			Actions: []string{models.ActionOptimize, models.ActionDeal, models.ActionSurprise},
		}
	}

	if left < 0 {
		over := math.Abs(left)
		cut := int64(math.Ceil(over / days))
		return models.Suggestion{
			Title: fmt.Sprintf("You’re %s over budget.", utils.FormatDollars(int64(math.Round(over)))),
			Detail: fmt.Sprintf("Atlas can fix this fast. Either increase your budget or cut about %s / day for extras.",
				utils.FormatDollars(cut)),
			Hint:    "Tap Optimize and I’ll rebalance your split.",
			Tone:    models.ToneDanger,
			Actions: []string{models.ActionOptimize, models.ActionDeal},
		}
	}

	daily := utils.FormatDollars(int64(math.Floor(perDay)))
	split := fmt.Sprintf("Suggested split: Dining ~%s, Transport ~%s, Activities ~%s.",
		utils.FormatDollars(int64(math.Round(planned*diningShare))),
		utils.FormatDollars(int64(math.Round(planned*transportShare))),
		utils.FormatDollars(int64(math.Round(planned*activitiesShare))),
	)

	switch {
	case perDay < tightPerDay:
		return models.Suggestion{
			Title:   "Tight pacing — but doable.",
			Detail:  fmt.Sprintf("You’ve got ~%s / day for extras. %s", daily, split),
			Hint:    "Atlas can help you stretch this without ruining the fun.",
			Tone:    models.ToneWarn,
			Actions: []string{models.ActionOptimize, models.ActionDeal},
		}
	case perDay < onTrackPerDay:
		return models.Suggestion{
			Title:   "You’re on track.",
			Detail:  fmt.Sprintf("You can spend ~%s / day and stay smooth. %s", daily, split),
			Hint:    "Want a better deal window? Tap Find better deal.",
			Tone:    models.ToneOK,
			Actions: []string{models.ActionDeal, models.ActionSurprise},
		}
	default:
		return models.Suggestion{
			Title:   "Comfortable pacing.",
			Detail:  fmt.Sprintf("You’ve got ~%s / day for extras. %s", daily, split),
			Hint:    "Atlas can upgrade the experience without breaking budget.",
			Tone:    models.ToneGreat,
			Actions: []string{models.ActionSurprise, models.ActionDeal},
		}
	}
}
