// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=artist.go -destination=mocks/artist.go -package=mocks
//go:generate mockgen -source=catalog.go -destination=mocks/catalog.go -package=mocks
//go:generate mockgen -source=distributor.go -destination=mocks/distributor.go -package=mocks
//go:generate mockgen -source=project.go -destination=mocks/project.go -package=mocks
//go:generate mockgen -source=track.go -destination=mocks/track.go -package=mocks
//go:generate mockgen -source=catalog_projection.go -destination=mocks/catalog_projection.go -package=mocks
//go:generate mockgen -source=concert_projection.go -destination=mocks/concert_projection.go -package=mocks
//go:generate mockgen -source=project_projection.go -destination=mocks/project_projection.go -package=mocks
//go:generate mockgen -source=payment_request.go -destination=mocks/payment_request.go -package=mocks
//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound indica que nenhuma linha foi afetada pela atualização ou remoção
var ErrNotFound = errors.New("record not found")

// ErrReferenceViolation indica que um registro referenciado não existe ou ainda é referenciado
var ErrReferenceViolation = errors.New("foreign key violation")

const pqForeignKeyViolation = "23503"

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func wrapDBError(err error, operation string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == pqForeignKeyViolation {
			return errors.Wrapf(ErrReferenceViolation, "%s: %s", operation, pqErr.Constraint)
		}
		return errors.Wrapf(pqErr, "%s (code: %s)", operation, pqErr.Code)
	}
	return errors.Wrap(err, operation)
}

// checkAffected transforma zero linhas afetadas em ErrNotFound
func checkAffected(result sql.Result, operation string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "%s: error getting rows affected", operation)
	}

	if rowsAffected == 0 {
		return errors.Wrap(ErrNotFound, operation)
	}

	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
