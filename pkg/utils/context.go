package utils

import (
	"context"

	"maintenance-system/pkg/contextkeys"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
)

// SessionFromContext pulls the session placed there by the auth middleware.
func SessionFromContext(ctx context.Context) (service.SessionContext, error) {
	sess, ok := ctx.Value(contextkeys.SessionKey).(service.SessionContext)
	if !ok {
		return service.SessionContext{}, apperrors.ErrInvalidToken
	}
	return sess, nil
}
