package cost_of_living

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, item LineItem) (LineItem, error)
	GetAll(ctx context.Context, userId int) ([]LineItem, error)
	Update(ctx context.Context, userId int, item LineItem) (bool, error)
	Delete(ctx context.Context, userId int, itemId string) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, item LineItem) (LineItem, error) {
	query := `INSERT INTO cost_of_living_item (id, user_id, category, name, value)
				VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, item.Id, userId, item.Category, item.Name, item.Value)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return LineItem{}, err
	}
	return item, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int) ([]LineItem, error) {
	query := `SELECT id, category, name, value FROM cost_of_living_item
				WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query cost of living items: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var item LineItem
		if err := rows.Scan(&item.Id, &item.Category, &item.Name, &item.Value); err != nil {
			err := fmt.Errorf("could not scan cost of living item: %w", err)
			log.Error(err)
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return items, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, userId int, item LineItem) (bool, error) {
	query := `UPDATE cost_of_living_item SET category = $1, name = $2, value = $3
				WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(ctx, query, item.Category, item.Name, item.Value, item.Id, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, itemId string) (bool, error) {
	query := `DELETE FROM cost_of_living_item WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, itemId, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
