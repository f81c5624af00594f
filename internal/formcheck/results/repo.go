package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/telemetry/tracing"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// Analysis is one stored form-check run.
type Analysis struct {
	ID             int             `json:"id"`
	VideoID        string          `json:"videoId"`
	ClientID       string          `json:"clientId"`
	DetectionRatio float64         `json:"detectionRatio"`
	Frames         int             `json:"frames"`
	Feedback       []feedback.Item `json:"feedback"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type ListParams struct {
	ClientID string
	Page     int
	Size     int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, analysis Analysis) (_ *Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.formcheck.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	feedbackJson, err := json.Marshal(analysis.Feedback)
	if err != nil {
		return nil, fmt.Errorf("marshal feedback: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO form_check_analysis
				(video_id, client_id, detection_ratio, frames, feedback, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		analysis.VideoID, analysis.ClientID, analysis.DetectionRatio,
		analysis.Frames, feedbackJson, analysis.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("analysis.id", id))

	analysis.ID = id
	return &analysis, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.formcheck.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	span.SetAttributes(attribute.Int("analysis.id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, video_id, client_id, detection_ratio, frames, feedback, created_at
			FROM form_check_analysis
			WHERE id = $1;`,
		id,
	)

	analysis, err := scanAnalysis(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAnalysisNotFound
	}
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Analysis, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.formcheck.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	total, err = r.Count(ctx, params.ClientID)
	if err != nil {
		return nil, 0, fmt.Errorf("count analyses: %w", err)
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size

	query := `SELECT id, video_id, client_id, detection_ratio, frames, feedback, created_at
			FROM form_check_analysis`
	args := []any{limit, offset}
	if params.ClientID != "" {
		query += ` WHERE client_id = $3`
		args = append(args, params.ClientID)
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan analysis row: %w", err)
		}
		analyses = append(analyses, *analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return analyses, total, nil
}

func (r *Repo) Count(ctx context.Context, clientID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.formcheck.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT COUNT(*) FROM form_check_analysis`
	var args []any
	if clientID != "" {
		query += ` WHERE client_id = $1`
		args = append(args, clientID)
	}

	var count int
	if err := r.db.QueryRow(ctx, query+";", args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.formcheck.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	span.SetAttributes(attribute.Int("analysis.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM form_check_analysis WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var analysis Analysis
	var feedbackJson []byte
	if err := row.Scan(
		&analysis.ID,
		&analysis.VideoID,
		&analysis.ClientID,
		&analysis.DetectionRatio,
		&analysis.Frames,
		&feedbackJson,
		&analysis.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(feedbackJson, &analysis.Feedback); err != nil {
		return nil, fmt.Errorf("unmarshal feedback: %w", err)
	}
	return &analysis, nil
}
