package models

import "time"

// PriceSnapshot stores one averaged row of a sampling run
// so prices can be compared across runs.
type PriceSnapshot struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	RunID string `json:"run_id" gorm:"size:36;index;not null"`
	// Term is the search string; ItemName is what the vendor listing was called
	Term         string    `json:"term" gorm:"size:191;not null"`
	ItemName     string    `json:"item_name" gorm:"size:191;index;not null"`
	AveragePrice float64   `json:"average_price"`
	ListingCount int       `json:"listing_count"` // listings averaged, not stock on hand
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}
