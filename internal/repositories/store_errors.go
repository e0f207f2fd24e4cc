package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"vitatrack/pkg/metrics"
	"vitatrack/pkg/utils"
)

// storeError classifies a driver error and records the outcome. Transport
// failures come back transient so the retry policy can act on them.
func storeError(table, op string, err error) error {
	if err == nil {
		metrics.ObserveStore(table, op, "ok")
		return nil
	}
	appErr := classify(err)
	metrics.ObserveStore(table, op, string(appErr.Code))
	return appErr
}

func classify(err error) *utils.AppError {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, context.Canceled) {
		return utils.NewAppError(utils.CodeNetworkError, "request cancelled", err)
	}
	if isTransient(err) {
		return utils.NewTransientError("store unreachable", err)
	}
	return utils.DatabaseError("store error", err)
}

func isTransient(err error) bool {
	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.EPIPE):
		return true
	case pgconn.Timeout(err), pgconn.SafeToRetry(err):
		return true
	case errors.As(err, &connectErr), errors.As(err, &netErr):
		return true
	}
	return false
}

// IsDuplicate reports a unique constraint violation, also through a
// classified error. Requires the gorm session to run with TranslateError.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func listByOwner[T any](ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]T, error) {
	rows := make([]T, 0)
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// findOne returns nil, nil when no row matches.
func findOne[T any](ctx context.Context, db *gorm.DB, table, query string, args ...interface{}) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where(query, args...).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeError(table, "find", nil)
		}
		return nil, storeError(table, "find", err)
	}
	return &row, storeError(table, "find", nil)
}

// insertOne returns false when the insert reported no affected row.
func insertOne[T any](ctx context.Context, db *gorm.DB, row *T) (bool, error) {
	result := db.WithContext(ctx).Create(row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
