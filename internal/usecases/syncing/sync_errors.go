package syncing

import "errors"

// Erros do contexto de sincronização
var (
	ErrSyncNotConfigured = errors.New("sync requires APPS_SCRIPT_URL, SHOPIFY_STORE_DOMAIN and SHOPIFY_ACCESS_TOKEN")
	ErrFetchMarketing    = errors.New("error fetching marketing rows from apps script")
	ErrFetchOrders       = errors.New("error fetching orders from shopify")
	ErrFetchExisting     = errors.New("error fetching existing hourly rows")
	ErrUpsertHourly      = errors.New("error upserting hourly rows")
	ErrUpsertOrders      = errors.New("error upserting order rows")
	ErrUpsertLines       = errors.New("error upserting order line rows")
)
