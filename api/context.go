package api

import (
	"context"

	"github.com/plateful-app/backend/models"
)

type keyType string

const currentUserKey keyType = "currentUser"

// ctxWithUser adds the resolved account to the context
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// currentUser retrieves the resolved account from the context. A nil
// result means the request is anonymous.
func currentUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(currentUserKey).(*models.User); ok {
		return user
	}
	return nil
}
