package service

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
)

// mapDatabaseError turns a driver failure into an internal application error
// that keeps the raw driver message and records the driver's error code.
func mapDatabaseError(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return apperror.Storage(err, fmt.Sprintf("mysql error %d", mysqlErr.Number))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Storage(err, fmt.Sprintf("postgres sqlstate %s", pgErr.Code))
	}

	return apperror.Storage(err, "")
}
