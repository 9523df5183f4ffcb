package models

import (
	"bytes"
	"encoding/json"
)

// Suggestion tones, from calm to alarming.
const (
	ToneNeutral = "neutral"
	ToneGreat   = "great"
	ToneOK      = "ok"
	ToneWarn    = "warn"
	ToneDanger  = "danger"
)

// Suggestion actions the frontend renders as buttons.
const (
	ActionOptimize = "optimize"
	ActionDeal     = "deal"
	ActionSurprise = "surprise"
)

// BudgetInput is the POST /api/budget/pace payload.
type BudgetInput struct {
	Planned      float64       `json:"planned"`
	Used         float64       `json:"used"`
	BookingTotal float64       `json:"bookingTotal"`
	TripDays     NullableFloat `json:"tripDays"`
}

// NullableFloat tells an absent field, an explicit null and a number apart.
type NullableFloat struct {
	Present bool
	Valid   bool
	Value   float64
}

// Float is a present, non-null value.
func Float(v float64) NullableFloat {
	return NullableFloat{Present: true, Valid: true, Value: v}
}

func (n *NullableFloat) UnmarshalJSON(b []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Valid, n.Value = false, 0
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

type Suggestion struct {
	Title   string   `json:"title"`
	Detail  string   `json:"detail"`
	Hint    string   `json:"hint"`
	Tone    string   `json:"tone"`
	Actions []string `json:"actions"`
}

type BudgetPace struct {
	Planned    float64    `json:"planned"`
	Spent      float64    `json:"spent"`
	Left       float64    `json:"left"`
	Percent    int        `json:"percent"`
	HasBudget  bool       `json:"hasBudget"`
	OverBudget bool       `json:"overBudget"`
	TripDays   float64    `json:"tripDays"`
	PerDay     float64    `json:"perDay"`
	MoodLabel  string     `json:"moodLabel"`
	Suggestion Suggestion `json:"suggestion"`
}
