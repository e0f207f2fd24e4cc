package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"vitatrack/pkg/utils"
)

func TestStoreError_Classification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCode      utils.ErrorCode
		wantTransient bool
	}{
		{name: "bad connection", err: driver.ErrBadConn, wantCode: utils.CodeNetworkError, wantTransient: true},
		{name: "unexpected eof", err: fmt.Errorf("read: %w", io.ErrUnexpectedEOF), wantCode: utils.CodeNetworkError, wantTransient: true},
		{name: "deadline", err: context.DeadlineExceeded, wantCode: utils.CodeNetworkError, wantTransient: true},
		{name: "cancelled", err: context.Canceled, wantCode: utils.CodeNetworkError, wantTransient: false},
		{name: "constraint", err: &pgconn.PgError{Code: "23503", Message: "violates foreign key"}, wantCode: utils.CodeDatabaseError},
		{name: "plain", err: errors.New("syntax error at or near network"), wantCode: utils.CodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storeError("t", "op", tt.err)
			assert.Equal(t, tt.wantCode, utils.CodeOf(got))
			assert.Equal(t, tt.wantTransient, utils.IsTransient(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, storeError("t", "op", nil))
}
