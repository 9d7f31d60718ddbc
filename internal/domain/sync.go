package domain

type SyncWindow struct {
	Days     int    `json:"days"`
	StartUTC string `json:"start_utc"`
	EndUTC   string `json:"end_utc"`
}

type AppsScriptSyncStats struct {
	MarketingHours int `json:"marketing_hours"`
}

type ShopifySyncStats struct {
	OrdersFetched     int `json:"orders_fetched"`
	PagesFetched      int `json:"pages_fetched"`
	HourlyPoints      int `json:"hourly_points"`
	OrderRowsUpserted int `json:"order_rows_upserted"`
	LineRowsUpserted  int `json:"line_rows_upserted"`
}

type StoreSyncStats struct {
	HourlyRowsInput    int `json:"hourly_rows_input"`
	HourlyRowsReturned int `json:"hourly_rows_returned"`
	OrderRowsReturned  int `json:"order_rows_returned"`
	LineRowsReturned   int `json:"line_rows_returned"`
}

// SyncSummary é o resultado de uma execução do sync horário
type SyncSummary struct {
	OK         bool                `json:"ok"`
	RunID      string              `json:"run_id"`
	SyncWindow SyncWindow          `json:"sync_window"`
	AppsScript AppsScriptSyncStats `json:"apps_script"`
	Shopify    ShopifySyncStats    `json:"shopify"`
	Store      StoreSyncStats      `json:"store"`
}
