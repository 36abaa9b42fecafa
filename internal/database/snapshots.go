package database

import (
	"context"
	"fmt"
	"time"

	"outlands-pricer/internal/models"
	"outlands-pricer/internal/pricing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultLimit = 100

type SnapshotStore struct {
	db *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// RunRecorder writes the rows of a single sampling run.
type RunRecorder struct {
	store *SnapshotStore
	runID string
}

func (s *SnapshotStore) ForRun(runID string) *RunRecorder {
	return &RunRecorder{store: s, runID: runID}
}

func (r *RunRecorder) RunID() string { return r.runID }

// Record stores the snapshot and refreshes the term's tracked item.
func (r *RunRecorder) Record(ctx context.Context, term string, result pricing.Result) error {
	now := time.Now()
	db := r.store.db.WithContext(ctx)

	snapshot := models.PriceSnapshot{
		RunID:        r.runID,
		Term:         term,
		ItemName:     result.Name,
		AveragePrice: result.AveragePrice,
		ListingCount: result.Count,
		CreatedAt:    now,
	}
	if err := db.Create(&snapshot).Error; err != nil {
		return fmt.Errorf("failed to save snapshot for %q: %w", term, err)
	}

	item := models.TrackedItem{
		Term:             term,
		ItemName:         result.Name,
		LastAveragePrice: result.AveragePrice,
		LastListingCount: result.Count,
		LastRunID:        r.runID,
		LastSeenAt:       now,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "term"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"item_name", "last_average_price", "last_listing_count", "last_run_id", "last_seen_at", "updated_at",
		}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to update tracked item %q: %w", term, err)
	}
	return nil
}

// Latest returns the rows of the most recent run in the order they were sampled.
func (s *SnapshotStore) Latest(ctx context.Context, limit int) ([]models.PriceSnapshot, error) {
	var last models.PriceSnapshot
	err := s.db.WithContext(ctx).Order("created_at desc").Order("id desc").Limit(1).Find(&last).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find latest run: %w", err)
	}
	if last.RunID == "" {
		return []models.PriceSnapshot{}, nil
	}

	var snapshots []models.PriceSnapshot
	if err := runQuery(s.db.WithContext(ctx), last.RunID, limit).Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", last.RunID, err)
	}
	return snapshots, nil
}

// History returns the snapshots of one item, newest first.
func (s *SnapshotStore) History(ctx context.Context, itemName string, limit int) ([]models.PriceSnapshot, error) {
	var snapshots []models.PriceSnapshot
	if err := historyQuery(s.db.WithContext(ctx), itemName, limit).Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to load history for %q: %w", itemName, err)
	}
	return snapshots, nil
}

func (s *SnapshotStore) TrackedItems(ctx context.Context) ([]models.TrackedItem, error) {
	var items []models.TrackedItem
	if err := s.db.WithContext(ctx).Order("term asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list tracked items: %w", err)
	}
	return items, nil
}

func runQuery(db *gorm.DB, runID string, limit int) *gorm.DB {
	return db.Model(&models.PriceSnapshot{}).
		Where("run_id = ?", runID).
		Order("id asc").
		Limit(clampLimit(limit))
}

func historyQuery(db *gorm.DB, itemName string, limit int) *gorm.DB {
	return db.Model(&models.PriceSnapshot{}).
		Where("item_name = ?", itemName).
		Order("created_at desc").
		Order("id desc").
		Limit(clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 1000 {
		return defaultLimit
	}
	return limit
}
