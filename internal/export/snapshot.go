package export

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS analytics_snapshots (
    course_id TEXT NOT NULL,
    course_title TEXT NOT NULL,
    student_name TEXT NOT NULL,
    submissions_count INTEGER NOT NULL,
    graded_count INTEGER NOT NULL,
    average_score DOUBLE PRECISION NOT NULL,
    completion_percentage DOUBLE PRECISION NOT NULL,
    captured_dttm_utc TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_course ON analytics_snapshots (course_id, captured_dttm_utc);
`

type snapshotRow struct {
	CourseID             string    `db:"course_id"`
	CourseTitle          string    `db:"course_title"`
	StudentName          string    `db:"student_name"`
	SubmissionsCount     int       `db:"submissions_count"`
	GradedCount          int       `db:"graded_count"`
	AverageScore         float64   `db:"average_score"`
	CompletionPercentage float64   `db:"completion_percentage"`
	CapturedDttmUTC      time.Time `db:"captured_dttm_utc"`
}

// SnapshotStore mirrors pulled analytics into Postgres so grade history
// can be inspected after the fact; the backend itself only serves the
// current state.
type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(dsn string) (*SnapshotStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare snapshot schema: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// SaveCourseSnapshot inserts one row per student for a single capture
// of the course's progress table.
func (s *SnapshotStore) SaveCourseSnapshot(stats *models.CourseStats, progress []models.StudentProgress, capturedAt time.Time) error {
	for _, p := range progress {
		row := snapshotRow{
			CourseID:             stats.CourseID,
			CourseTitle:          stats.CourseTitle,
			StudentName:          p.StudentName,
			SubmissionsCount:     p.SubmissionsCount,
			GradedCount:          p.GradedCount,
			AverageScore:         p.AverageScore,
			CompletionPercentage: p.CompletionPercentage,
			CapturedDttmUTC:      capturedAt.UTC(),
		}

		_, err := s.db.NamedExec(`
			INSERT INTO analytics_snapshots (
				course_id, course_title, student_name,
				submissions_count, graded_count,
				average_score, completion_percentage, captured_dttm_utc
			) VALUES (
				:course_id, :course_title, :student_name,
				:submissions_count, :graded_count,
				:average_score, :completion_percentage, :captured_dttm_utc
			)
		`, row)
		if err != nil {
			return fmt.Errorf("failed to save snapshot row: %w", err)
		}
	}

	return nil
}

func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
