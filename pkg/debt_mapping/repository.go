package debt_mapping

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, item DebtMapItem) (DebtMapItem, error)
	GetAll(ctx context.Context, userId int) ([]DebtMapItem, error)
	Update(ctx context.Context, userId int, item DebtMapItem) (bool, error)
	Delete(ctx context.Context, userId int, itemId string) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, item DebtMapItem) (DebtMapItem, error) {
	query := `INSERT INTO debt_mapping_item (id, user_id, name, creditor, installment_value, remaining_installments)
				VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, item.Id, userId, item.Name, item.Creditor, item.InstallmentValue, item.RemainingInstallments)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return DebtMapItem{}, err
	}
	return item, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int) ([]DebtMapItem, error) {
	query := `SELECT id, name, creditor, installment_value, remaining_installments FROM debt_mapping_item
				WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query debt mapping items: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var items []DebtMapItem
	for rows.Next() {
		var item DebtMapItem
		if err := rows.Scan(&item.Id, &item.Name, &item.Creditor, &item.InstallmentValue, &item.RemainingInstallments); err != nil {
			err := fmt.Errorf("could not scan debt mapping item: %w", err)
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

func (r *RepositoryImpl) Update(ctx context.Context, userId int, item DebtMapItem) (bool, error) {
	query := `UPDATE debt_mapping_item SET name = $1, creditor = $2, installment_value = $3, remaining_installments = $4
				WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(ctx, query, item.Name, item.Creditor, item.InstallmentValue, item.RemainingInstallments, item.Id, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, itemId string) (bool, error) {
	query := `DELETE FROM debt_mapping_item WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, itemId, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
