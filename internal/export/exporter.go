package export

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/kateder/internal/app"
	"github.com/shrimpsizemoose/kateder/internal/gateway"
	"github.com/shrimpsizemoose/kateder/internal/models"
)

// AnalyticsExporter periodically pulls course stats and per-student
// progress through the gateway and mirrors them into the snapshot store
// and/or a Google Sheet. A course is exported all-or-nothing: if either
// analytics call fails, that cycle writes nothing for the course.
type AnalyticsExporter struct {
	config    *app.Config
	gw        *gateway.Gateway
	store     *SnapshotStore
	scheduler *gocron.Scheduler
	sheets    map[string]*sheets.Service
}

func NewAnalyticsExporter(config *app.Config, gw *gateway.Gateway) (*AnalyticsExporter, error) {
	if config.Export.Schedule == "" {
		return nil, fmt.Errorf("export.schedule is not specified in config")
	}
	if len(config.Export.Courses) == 0 {
		return nil, fmt.Errorf("export.courses is empty, nothing to export")
	}

	e := &AnalyticsExporter{
		config:    config,
		gw:        gw,
		scheduler: gocron.NewScheduler(time.UTC),
		sheets:    make(map[string]*sheets.Service),
	}

	if config.Export.DSN != "" {
		store, err := NewSnapshotStore(config.Export.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to init snapshot store: %w", err)
		}
		e.store = store
	}

	ctx := context.Background()
	for courseID, cfg := range config.Export.GSheet {
		svc, err := sheets.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath))
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", err)
		}
		e.sheets[courseID] = svc
	}

	for _, courseID := range config.Export.Courses {
		courseID := courseID
		_, err := e.scheduler.Cron(config.Export.Schedule).Do(func() {
			if err := e.ExportCourse(context.Background(), courseID); err != nil {
				logger.Error.Printf("Export failed for course %s: %v", courseID, err)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to schedule export: %w", err)
		}
	}

	return e, nil
}

func (e *AnalyticsExporter) Start() {
	e.scheduler.StartAsync()
}

// ExportCourse pulls one course's analytics and pushes them to every
// configured destination.
func (e *AnalyticsExporter) ExportCourse(ctx context.Context, courseID string) error {
	stats, err := e.gw.CourseStats(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to fetch course stats: %w", err)
	}

	progress, err := e.gw.StudentProgress(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to fetch student progress: %w", err)
	}

	capturedAt := time.Now().UTC()

	if e.store != nil {
		if err := e.store.SaveCourseSnapshot(stats, progress, capturedAt); err != nil {
			return fmt.Errorf("failed to store snapshot: %w", err)
		}
		logger.Info.Printf("Stored snapshot for %s: %d students", stats.CourseTitle, len(progress))
	}

	if svc, ok := e.sheets[courseID]; ok {
		cfg := e.config.Export.GSheet[courseID]
		if err := e.pushSheet(svc, &cfg, stats, progress, capturedAt); err != nil {
			return fmt.Errorf("failed to push sheet: %w", err)
		}
		logger.Info.Printf("Pushed sheet %s for %s", cfg.SheetName, stats.CourseTitle)
	}

	return nil
}

func (e *AnalyticsExporter) pushSheet(svc *sheets.Service, cfg *app.GSheetConfig, stats *models.CourseStats, progress []models.StudentProgress, capturedAt time.Time) error {
	rows := [][]interface{}{
		{"Course", stats.CourseTitle, fmt.Sprintf("UPD: %s", capturedAt.Format("2 January 15:04"))},
		{"Students", stats.StudentsCount, ""},
		{"Assignments", stats.AssignmentsCount, ""},
		{"Submissions", stats.TotalSubmissions, ""},
		{"Average score", stats.AverageScore, ""},
		{"", "", ""},
		{"Student", "Submitted", "Graded", "Average", "Progress %"},
	}
	for _, p := range progress {
		rows = append(rows, []interface{}{
			p.StudentName,
			p.SubmissionsCount,
			p.GradedCount,
			p.AverageScore,
			p.CompletionPercentage,
		})
	}

	writeRange := fmt.Sprintf("%s!%s", cfg.SheetName, cfg.StartCell)
	_, err := svc.Spreadsheets.Values.Update(cfg.SheetID, writeRange,
		&sheets.ValueRange{Values: rows}).ValueInputOption("RAW").Do()

	return err
}

func (e *AnalyticsExporter) Close() error {
	e.scheduler.Stop()
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}
