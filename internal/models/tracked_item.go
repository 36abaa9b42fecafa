package models

import "time"

// TrackedItem keeps the most recent average for each search term.
type TrackedItem struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Term             string    `json:"term" gorm:"size:191;uniqueIndex;not null"`
	ItemName         string    `json:"item_name" gorm:"size:191;index"`
	LastAveragePrice float64   `json:"last_average_price"`
	LastListingCount int       `json:"last_listing_count"`
	LastRunID        string    `json:"last_run_id" gorm:"size:36"`
	LastSeenAt       time.Time `json:"last_seen_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
