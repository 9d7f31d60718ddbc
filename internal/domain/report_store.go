package domain

type SessionsReport struct {
	UpdatedAt           string           `json:"updatedAt"`
	Status              string           `json:"status"`
	Source              string           `json:"source"`
	Metric              *string          `json:"metric"`
	QueryUsed           string           `json:"query_used"`
	UnavailableReason   string           `json:"unavailable_reason"`
	Period              ComparisonWindow `json:"period"`
	MTDSessions         *float64         `json:"mtd_sessions"`
	PreviousMTDSessions *float64         `json:"previous_mtd_sessions"`
	SessionsChange      *float64         `json:"sessions_change"`
	SessionsChangePct   *float64         `json:"sessions_change_pct"`
}

type CustomerSplit[T any] struct {
	New       T `json:"new"`
	Returning T `json:"returning"`
	Unknown   T `json:"unknown"`
}

type NewVsReturningReport struct {
	UpdatedAt string                  `json:"updatedAt"`
	Period    Period                  `json:"period"`
	Revenue   CustomerSplit[*float64] `json:"revenue"`
	Orders    CustomerSplit[int]      `json:"orders"`
	SharesPct CustomerSplit[*float64] `json:"shares_pct"`
}

type ChannelEntry struct {
	Channel         string   `json:"channel"`
	Revenue         *float64 `json:"revenue"`
	Orders          int      `json:"orders"`
	RevenueSharePct *float64 `json:"revenue_share_pct"`
}

type ChannelSplitReport struct {
	UpdatedAt         string         `json:"updatedAt"`
	Status            string         `json:"status"`
	UnavailableReason string         `json:"unavailable_reason"`
	Period            Period         `json:"period"`
	TotalRevenue      *float64       `json:"total_revenue"`
	Channels          []ChannelEntry `json:"channels"`
}

type DiscountImpactReport struct {
	UpdatedAt              string   `json:"updatedAt"`
	Status                 string   `json:"status"`
	UnavailableReason      string   `json:"unavailable_reason"`
	Period                 Period   `json:"period"`
	DiscountedOrdersCount  int      `json:"discounted_orders_count"`
	DiscountedOrdersPct    *float64 `json:"discounted_orders_pct"`
	TotalDiscounts         float64  `json:"total_discounts"`
	AvgDiscountPerOrder    *float64 `json:"avg_discount_per_order"`
	DiscountRatePctOfGross *float64 `json:"discount_rate_pct_of_gross"`
}

type HeatmapHour struct {
	HourUTC     string   `json:"hour_utc"`
	SalesAmount *float64 `json:"sales_amount"`
	Orders      *float64 `json:"orders"`
}

type HeatmapReport struct {
	UpdatedAt         string        `json:"updatedAt"`
	Status            string        `json:"status"`
	UnavailableReason string        `json:"unavailable_reason"`
	DayUTC            string        `json:"day_utc"`
	Heatmap           []HeatmapHour `json:"heatmap"`
}
