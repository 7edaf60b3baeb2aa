package user

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const UserKey contextKey = "user"
const ViewedUserKey contextKey = "viewedUser"

var ErrNoUser = errors.New("user not found")

// CurrentId retrieves the authenticated user's ID from the context. Returns ErrNoUser if not present.
func CurrentId(ctx context.Context) (int, error) {
	user, ok := ctx.Value(UserKey).(User)
	if !ok {
		log.Trace("user not found in context")
		return 0, ErrNoUser
	}
	return user.Id, nil
}

func CurrentUser(ctx context.Context) (User, error) {
	user, ok := ctx.Value(UserKey).(User)
	if !ok {
		log.Trace("user not found in context")
		return User{}, ErrNoUser
	}
	return user, nil
}

// EffectiveId returns the id of the user whose data is being worked on.
// For staff impersonating a client it is the viewed user's id, otherwise
// the authenticated user's own id.
func EffectiveId(ctx context.Context) (int, error) {
	if viewed, ok := ctx.Value(ViewedUserKey).(User); ok {
		return viewed.Id, nil
	}
	return CurrentId(ctx)
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// WithViewedUser marks the context as an admin session viewing another user's data.
func WithViewedUser(ctx context.Context, viewed User) context.Context {
	return context.WithValue(ctx, ViewedUserKey, viewed)
}
