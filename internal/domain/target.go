package domain

import "time"

const (
	GoalStatusAchieved    = "target_achieved"
	GoalStatusOnPace      = "on_pace"
	GoalStatusBehindPace  = "behind_pace"
	GoalStatusUnavailable = "unavailable"
)

// MonthlyTarget é a meta de vendas cadastrada para um mês (chave YYYY-MM)
type MonthlyTarget struct {
	Month     string    `db:"month" json:"month"`
	Target    float64   `db:"target" json:"target"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type UpsertMonthlyTargetRequest struct {
	Target float64 `json:"target"`
}

// GoalReport acompanha o MTD contra a meta do mês
type GoalReport struct {
	UpdatedAt            string   `json:"updatedAt"`
	Month                string   `json:"month"`
	Status               string   `json:"status"`
	CurrentMTD           *float64 `json:"current_mtd"`
	PreviousMonthTotal   *float64 `json:"previous_month_total"`
	PreviousMonthSource  string   `json:"previous_month_source"`
	Target               *float64 `json:"target"`
	TargetSource         string   `json:"target_source"`
	Multiplier           float64  `json:"multiplier"`
	ProgressPct          *float64 `json:"progress_pct"`
	ExpectedProgressPct  *float64 `json:"expected_progress_pct"`
	BeatTarget           bool     `json:"beatTarget"`
	OnPace               bool     `json:"on_pace"`
	GapTarget            string   `json:"gapTarget"`
	GapPrevious          string   `json:"gap_previous"`
	GrowthVsLastMonthPct *float64 `json:"growth_vs_last_month_pct"`
	DaysElapsed          int      `json:"days_elapsed"`
	DaysInMonth          int      `json:"days_in_month"`
}
