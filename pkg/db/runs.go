package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/gate"
)

// RunRecord describes the inputs of a classification run.
type RunRecord struct {
	SnapshotHash  string           `json:"snapshot_hash" yaml:"snapshot_hash"`
	URL           string           `json:"url,omitempty" yaml:"url,omitempty"`
	Title         string           `json:"title,omitempty" yaml:"title,omitempty"`
	Language      string           `json:"language,omitempty" yaml:"language,omitempty"`
	PageHeight    float64          `json:"page_height" yaml:"page_height"`
	MinConfidence float64          `json:"min_confidence" yaml:"min_confidence"`
	Fallback      models.Archetype `json:"fallback" yaml:"fallback"`
}

// Run is a stored classification run.
type Run struct {
	RunID     int64 `json:"run_id" yaml:"run_id"`
	RunRecord `yaml:",inline"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	Stats     models.GateStats `json:"stats" yaml:"stats"`
}

// InsertRun stores a gated result. Runs are keyed by snapshot hash: if the
// hash is already present the existing run_id is returned with existing=true
// and nothing is written.
func (db *DB) InsertRun(rec RunRecord, res gate.Result) (runID int64, existing bool, err error) {
	err = db.QueryRow("SELECT run_id FROM runs WHERE snapshot_hash = ?", rec.SnapshotHash).Scan(&runID)
	if err == nil {
		return runID, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("failed to check existing run: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	result, err := tx.Exec(`
		INSERT INTO runs (snapshot_hash, url, title, language, page_height, min_confidence, fallback,
			section_count, high_count, medium_count, low_count, none_count, reanalysis_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.SnapshotHash, rec.URL, rec.Title, rec.Language, rec.PageHeight, rec.MinConfidence, string(rec.Fallback),
		res.Stats.Total, res.Stats.High, res.Stats.Medium, res.Stats.Low, res.Stats.None, res.Stats.NeedsReanalysis)
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err = result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get run ID: %w", err)
	}

	for _, s := range res.Sections {
		var raw []byte
		raw, err = json.Marshal(s)
		if err != nil {
			return 0, false, fmt.Errorf("failed to encode section %d: %w", s.Index, err)
		}
		_, err = tx.Exec(`
			INSERT INTO run_sections (run_id, section_index, tag, label, archetype, variant, confidence,
				method, tier, original_archetype, y, height, section_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, s.Index, s.Tag, s.Label, string(s.Archetype), s.Variant, s.Confidence,
			string(s.Method), string(s.ConfidenceTier), string(s.OriginalArchetype), s.Rect.Y, s.Rect.Height, string(raw))
		if err != nil {
			return 0, false, fmt.Errorf("failed to insert section %d: %w", s.Index, err)
		}
	}

	for _, item := range res.NeedsReanalysis {
		_, err = tx.Exec(`
			INSERT INTO run_worklist (run_id, section_index, archetype, variant, confidence, method, label,
				tier, x, y, width, height)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, item.Index, string(item.CurrentArchetype), item.CurrentVariant, item.Confidence,
			string(item.Method), item.Label, string(item.Tier), item.Rect.X, item.Rect.Y, item.Rect.Width, item.Rect.Height)
		if err != nil {
			return 0, false, fmt.Errorf("failed to insert worklist item %d: %w", item.Index, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, false, nil
}

const runColumns = `run_id, snapshot_hash, url, title, language, page_height, min_confidence, fallback, created_at,
	section_count, high_count, medium_count, low_count, none_count, reanalysis_count`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		r                    Run
		url, title, language sql.NullString
		fallback             string
	)
	err := row.Scan(
		&r.RunID,
		&r.SnapshotHash,
		&url,
		&title,
		&language,
		&r.PageHeight,
		&r.MinConfidence,
		&fallback,
		&r.CreatedAt,
		&r.Stats.Total,
		&r.Stats.High,
		&r.Stats.Medium,
		&r.Stats.Low,
		&r.Stats.None,
		&r.Stats.NeedsReanalysis,
	)
	if err != nil {
		return nil, err
	}
	r.URL, r.Title, r.Language = url.String, title.String, language.String
	r.Fallback = models.Archetype(fallback)
	return &r, nil
}

// GetRun retrieves a run by its ID
func (db *DB) GetRun(runID int64) (*Run, error) {
	r, err := scanRun(db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns returns the most recent runs first. limit <= 0 returns all runs.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY created_at DESC, run_id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// GetRunSections returns the gated sections of a run in page order.
func (db *DB) GetRunSections(runID int64) ([]models.GatedSection, error) {
	if _, err := db.GetRun(runID); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT section_json FROM run_sections
		WHERE run_id = ?
		ORDER BY section_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run sections: %w", err)
	}
	defer rows.Close()

	sections := []models.GatedSection{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		var s models.GatedSection
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("failed to decode section: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// GetWorklist returns the re-analysis worklist of a run.
func (db *DB) GetWorklist(runID int64) ([]models.ReanalysisItem, error) {
	if _, err := db.GetRun(runID); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT section_index, archetype, variant, confidence, method, label, tier, x, y, width, height
		FROM run_worklist
		WHERE run_id = ?
		ORDER BY section_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get worklist: %w", err)
	}
	defer rows.Close()

	items := []models.ReanalysisItem{}
	for rows.Next() {
		var (
			item                    models.ReanalysisItem
			archetype, method, tier string
			variant, label          sql.NullString
		)
		err := rows.Scan(&item.Index, &archetype, &variant, &item.Confidence, &method, &label, &tier,
			&item.Rect.X, &item.Rect.Y, &item.Rect.Width, &item.Rect.Height)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worklist item: %w", err)
		}
		item.CurrentArchetype = models.Archetype(archetype)
		item.CurrentVariant = variant.String
		item.Method = models.Method(method)
		item.Label = label.String
		item.Tier = models.Tier(tier)
		items = append(items, item)
	}
	return items, rows.Err()
}
