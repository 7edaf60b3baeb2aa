package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// PostgresRotationStore persists rotation queues so a cycle survives restarts.
type PostgresRotationStore struct {
	db *pgxpool.Pool
}

func NewPostgresRotationStore(db *pgxpool.Pool) *PostgresRotationStore {
	return &PostgresRotationStore{db: db}
}

func (s *PostgresRotationStore) Get(ctx context.Context, userId int, bucket Bucket) ([]int, error) {
	query := `SELECT queue FROM insight_rotation WHERE user_id = $1 AND bucket = $2`

	var raw []byte
	err := s.db.QueryRow(ctx, query, userId, string(bucket)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		err := fmt.Errorf("could not query rotation queue: %w", err)
		log.Error(err)
		return nil, err
	}

	var queue []int
	if err := json.Unmarshal(raw, &queue); err != nil {
		err := fmt.Errorf("could not decode rotation queue for user %d: %w", userId, err)
		log.Error(err)
		return nil, err
	}
	return queue, nil
}

func (s *PostgresRotationStore) Put(ctx context.Context, userId int, bucket Bucket, queue []int) error {
	if queue == nil {
		queue = []int{}
	}
	raw, err := json.Marshal(queue)
	if err != nil {
		err := fmt.Errorf("could not encode rotation queue: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO insight_rotation (user_id, bucket, queue)
				VALUES ($1, $2, $3)
				ON CONFLICT (user_id, bucket) DO UPDATE SET queue = EXCLUDED.queue`

	_, err = s.db.Exec(ctx, query, userId, string(bucket), raw)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
