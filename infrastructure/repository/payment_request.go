package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const paymentRequestsTable = "payment_requests"

var paymentRequestColumns = []string{"id", "artist_id", "amount", "description", "status", "justification", "created_at", "updated_at"}

type PaymentRequestFilter struct {
	ArtistID string
	Status   domain.PaymentRequestStatus
}

type PaymentRequestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error)
	List(ctx context.Context, filter PaymentRequestFilter) ([]*domain.PaymentRequest, error)
	Create(ctx context.Context, request *domain.PaymentRequest) error
	UpdateStatus(ctx context.Context, request *domain.PaymentRequest, from domain.PaymentRequestStatus) error
}

type paymentRequestRepository struct {
	conn *postgres.Connection
}

func NewPaymentRequestRepository(conn *postgres.Connection) PaymentRequestRepository {
	return &paymentRequestRepository{
		conn: conn,
	}
}

func (r *paymentRequestRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	query, args, err := squirrel.
		Select(paymentRequestColumns...).
		From(paymentRequestsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	request, err := scanPaymentRequest(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get payment request")
	}

	return request, nil
}

func (r *paymentRequestRepository) List(ctx context.Context, filter PaymentRequestFilter) ([]*domain.PaymentRequest, error) {
	queryBuilder := squirrel.
		Select(paymentRequestColumns...).
		From(paymentRequestsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ArtistID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"artist_id": filter.ArtistID})
	}
	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list payment requests")
	}
	defer rows.Close()

	requests := make([]*domain.PaymentRequest, 0)
	for rows.Next() {
		request, err := scanPaymentRequest(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan payment request")
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate payment requests")
	}

	return requests, nil
}

func (r *paymentRequestRepository) Create(ctx context.Context, request *domain.PaymentRequest) error {
	query, args, err := squirrel.
		Insert(paymentRequestsTable).
		Columns("id", "artist_id", "amount", "description", "status", "justification").
		Values(request.ID, request.ArtistID, request.Amount, request.Description, request.Status, request.Justification).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&request.CreatedAt, &request.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create payment request")
	}

	return nil
}

// UpdateStatus grava apenas status e justificativa; os demais campos são imutáveis após a criação.
// A linha só é alterada se ainda estiver no status from, senão retorna ErrNotFound
func (r *paymentRequestRepository) UpdateStatus(ctx context.Context, request *domain.PaymentRequest, from domain.PaymentRequestStatus) error {
	query, args, err := squirrel.
		Update(paymentRequestsTable).
		Set("status", request.Status).
		Set("justification", request.Justification).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": request.ID, "status": from}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&request.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return wrapDBError(ErrNotFound, "failed to update payment request")
		}
		return wrapDBError(err, "failed to update payment request")
	}

	return nil
}

func scanPaymentRequest(row scanner) (*domain.PaymentRequest, error) {
	request := &domain.PaymentRequest{}

	if err := row.Scan(
		&request.ID,
		&request.ArtistID,
		&request.Amount,
		&request.Description,
		&request.Status,
		&request.Justification,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return request, nil
}
