package diagnostic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Find returns the persisted record for the user, or nil when none exists.
	Find(ctx context.Context, userId int) (*DiagnosticRecord, error)
	Save(ctx context.Context, userId int, record DiagnosticRecord) error
	// UpdateAnalysis patches only the cached analysis fields, leaving the
	// record's edit timestamp alone. A missing record is a no-op.
	UpdateAnalysis(ctx context.Context, userId int, analysis string, hash string) error
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Find(ctx context.Context, userId int) (*DiagnosticRecord, error) {
	query := `SELECT record FROM diagnostic WHERE user_id = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, userId).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		err := fmt.Errorf("could not query diagnostic record: %w", err)
		log.Error(err)
		return nil, err
	}

	var record DiagnosticRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		err := fmt.Errorf("could not decode diagnostic record for user %d: %w", userId, err)
		log.Error(err)
		return nil, err
	}
	return &record, nil
}

func (r *RepositoryImpl) Save(ctx context.Context, userId int, record DiagnosticRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		err := fmt.Errorf("could not encode diagnostic record: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO diagnostic (user_id, record, updated_at)
				VALUES ($1, $2, $3)
				ON CONFLICT (user_id) DO UPDATE SET
					record = EXCLUDED.record,
					updated_at = EXCLUDED.updated_at`

	_, err = r.db.Exec(ctx, query, userId, raw, record.LastUpdated)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) UpdateAnalysis(ctx context.Context, userId int, analysis string, hash string) error {
	query := `UPDATE diagnostic
				SET record = jsonb_set(jsonb_set(record, '{aiAnalysis}', to_jsonb($1::text)), '{aiAnalysisHash}', to_jsonb($2::text))
				WHERE user_id = $3`

	_, err := r.db.Exec(ctx, query, analysis, hash, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
