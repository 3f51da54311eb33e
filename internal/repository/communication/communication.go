package communication

import (
	"context"
	"fmt"

	"fleetdesk/internal/entities"
)

const communicationColumns = `id, order_id, sender, message, type, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create - единственная пишущая операция, журнал append-only.
func (r *Repository) Create(ctx context.Context, communicationModifyEntity entities.CommunicationModify) (*entities.Communication, error) {
	query := `INSERT INTO communications (order_id, sender, message, type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + communicationColumns

	var typeValue *string
	if communicationModifyEntity.Type != nil {
		value := communicationModifyEntity.Type.String()
		typeValue = &value
	}

	var communicationModel CommunicationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		communicationModifyEntity.OrderID,
		communicationModifyEntity.Sender,
		communicationModifyEntity.Message,
		typeValue,
	).Scan(
		&communicationModel.ID,
		&communicationModel.OrderID,
		&communicationModel.Sender,
		&communicationModel.Message,
		&communicationModel.Type,
		&communicationModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected communication repository create error: %w", err)
	}

	return ToDomain(&communicationModel), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) ([]entities.Communication, error) {
	query := `SELECT ` + communicationColumns + `
		FROM communications
		WHERE order_id = $1
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected communication repository getbyorderid error: %w", err)
	}
	defer rows.Close()

	communicationModels := make([]CommunicationDB, 0, 8)
	for rows.Next() {
		var communicationModel CommunicationDB
		err := rows.Scan(
			&communicationModel.ID,
			&communicationModel.OrderID,
			&communicationModel.Sender,
			&communicationModel.Message,
			&communicationModel.Type,
			&communicationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected communication repository getbyorderid error: %w", err)
		}
		communicationModels = append(communicationModels, communicationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected communication repository getbyorderid error: %w", err)
	}

	return ToDomainList(communicationModels), nil
}
