package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

func (g *Gateway) CourseStats(ctx context.Context, courseID string) (*models.CourseStats, error) {
	var stats models.CourseStats
	if err := g.call(ctx, "analytics", http.MethodGet, "/analytics/courses/"+courseID+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (g *Gateway) StudentProgress(ctx context.Context, courseID string) ([]models.StudentProgress, error) {
	var progress []models.StudentProgress
	if err := g.call(ctx, "analytics", http.MethodGet, "/analytics/courses/"+courseID+"/student-progress", nil, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// GenerateMockData asks the admin surface to seed demo records for a
// course. Teacher accounts without admin rights get a domain failure.
func (g *Gateway) GenerateMockData(ctx context.Context, courseID string, numRecords int) (*models.MockDataReport, error) {
	path := fmt.Sprintf("/admin/mock-data/generate?course_id=%s&num_records=%d", courseID, numRecords)
	var report models.MockDataReport
	if err := g.call(ctx, "admin", http.MethodPost, path, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// MockStatistics returns the raw seeded-statistics payload; the shape
// varies by backend version so it is passed through undecoded.
func (g *Gateway) MockStatistics(ctx context.Context, courseID string) (json.RawMessage, error) {
	path := "/admin/mock-data/statistics"
	if courseID != "" {
		path += "?course_id=" + courseID
	}
	var raw json.RawMessage
	if err := g.call(ctx, "admin", http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
