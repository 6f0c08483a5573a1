package kafka

import "time"

// CartUpdatedEvent is published after every persisted cart mutation
type CartUpdatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	CartKey   string    `json:"cart_key"`
	Op        string    `json:"op"`
	ProductID int       `json:"product_id,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Items     int       `json:"items"`
	Lines     int       `json:"lines"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// CatalogRefreshEvent asks every storefront instance to re-fetch the catalog
type CatalogRefreshEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	Reason          string    `json:"reason,omitempty"`
	InvalidateCache bool      `json:"invalidate_cache"`
	Timestamp       time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCartUpdated    = "cart.updated"
	EventTypeCatalogRefresh = "catalog.refresh"
)

// Kafka topics
const (
	TopicCartUpdated    = "cart-updated"
	TopicCatalogRefresh = "catalog-refresh"
)
