package services

import (
	"context"

	"github.com/google/uuid"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

// guard rejects calls without a session, and writes whose claimed owner is
// not the session user.
func guard(identity dm.Identity, claimedOwner string) error {
	if identity.UserID == uuid.Nil {
		return utils.ErrUserNotFound
	}
	if !identity.OwnedBy(claimedOwner) {
		return utils.ErrInvalidUser
	}
	return nil
}

// fetch runs a read under the retry policy and normalizes its failure.
func fetch[T any](ctx context.Context, p retry.Policy, name string, op retry.Operation[T]) (T, error) {
	out, err := retry.Do(ctx, p, name, op)
	if err != nil {
		var zero T
		return zero, utils.Normalize(err)
	}
	return out, nil
}

// insert is fetch for single row writes; a nil row is INSERT_FAILED.
func insert[T any](ctx context.Context, p retry.Policy, name string, op retry.Operation[*T]) (*T, error) {
	out, err := retry.Do(ctx, p, name, op)
	if err != nil {
		return nil, utils.Normalize(err)
	}
	if out == nil {
		return nil, utils.ErrInsertFailed
	}
	return out, nil
}
