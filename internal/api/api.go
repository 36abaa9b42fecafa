package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"outlands-pricer/internal/export"
	"outlands-pricer/internal/models"
	"outlands-pricer/internal/pricing"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PriceStore is the read side of the snapshot history.
type PriceStore interface {
	Latest(ctx context.Context, limit int) ([]models.PriceSnapshot, error)
	History(ctx context.Context, itemName string, limit int) ([]models.PriceSnapshot, error)
	TrackedItems(ctx context.Context) ([]models.TrackedItem, error)
}

type APIHandler struct {
	store PriceStore
	sheet string
}

func SetupRoutes(r *gin.RouterGroup, store PriceStore, sheet string) *APIHandler {
	handler := &APIHandler{
		store: store,
		sheet: sheet,
	}

	prices := r.Group("/prices")
	{
		prices.GET("/latest", handler.GetLatest)
		prices.GET("/history", handler.GetHistory)
		prices.GET("/items", handler.ListTrackedItems)
		prices.GET("/export.xlsx", handler.ExportLatest)
	}

	return handler
}

func (h *APIHandler) GetLatest(c *gin.Context) {
	snapshots, err := h.store.Latest(c.Request.Context(), queryLimit(c))
	if err != nil {
		log.Printf("[api] latest failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id": runIDOf(snapshots),
		"count":  len(snapshots),
		"items":  snapshots,
	})
}

func (h *APIHandler) GetHistory(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	snapshots, err := h.store.History(c.Request.Context(), name, queryLimit(c))
	if err != nil {
		log.Printf("[api] history for %q failed: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  name,
		"count": len(snapshots),
		"items": snapshots,
	})
}

func (h *APIHandler) ListTrackedItems(c *gin.Context) {
	items, err := h.store.TrackedItems(c.Request.Context())
	if err != nil {
		log.Printf("[api] tracked items failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// ExportLatest streams the latest run in the same layout the CLI writes.
func (h *APIHandler) ExportLatest(c *gin.Context) {
	snapshots, err := h.store.Latest(c.Request.Context(), queryLimit(c))
	if err != nil {
		log.Printf("[api] export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := make([]pricing.Result, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, pricing.Result{
			Name:         s.ItemName,
			AveragePrice: s.AveragePrice,
			Count:        s.ListingCount,
		})
	}

	filename := fmt.Sprintf("item_prices_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := export.StreamExcel(c.Writer, h.sheet, rows); err != nil {
		log.Printf("[api] export stream failed: %v", err)
	}
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}

func runIDOf(snapshots []models.PriceSnapshot) string {
	if len(snapshots) == 0 {
		return ""
	}
	return snapshots[0].RunID
}
