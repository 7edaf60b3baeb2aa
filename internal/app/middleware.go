package app

import (
	"errors"
	"net/http"

	"github.com/balanco/balanco/internal/config"
	"github.com/balanco/balanco/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Propagate X-User-Id header into context for downstream services
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			userIdHeader := req.Header.Get("X-User-Id")
			ctx := req.Context()

			if userIdHeader != "" {
				u, err := deps.UserService.GetUserByUid(ctx, userIdHeader)
				if err != nil {
					if errors.Is(err, user.ErrUserNotFound) {
						log.Debugf("user not found: %s", userIdHeader)
						http.Error(w, "user not found", http.StatusForbidden)
						return
					} else {
						log.Errorf("failed to get user: %v", err)
						http.Error(w, err.Error(), http.StatusBadRequest)
						return
					}
				} else {
					log.Debugf("user found: %s", u.Uid)
					ctx = user.WithUser(ctx, u)
				}
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})

	// Admins may act on behalf of a client via X-Viewing-User-Id
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			viewedUidHeader := req.Header.Get("X-Viewing-User-Id")
			ctx := req.Context()

			if viewedUidHeader != "" {
				currentUser, err := user.CurrentUser(ctx)
				if err != nil || !currentUser.IsAdmin() {
					log.Warnf("impersonation attempt without admin role: %v", viewedUidHeader)
					http.Error(w, "impersonation requires an admin user", http.StatusForbidden)
					return
				}
				viewed, err := deps.UserService.GetUserByUid(ctx, viewedUidHeader)
				if err != nil {
					if errors.Is(err, user.ErrUserNotFound) {
						http.Error(w, "viewed user not found", http.StatusForbidden)
						return
					}
					log.Errorf("failed to get viewed user: %v", err)
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				log.Debugf("admin %s is viewing user %s", currentUser.Uid, viewed.Uid)
				ctx = user.WithViewedUser(ctx, viewed)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
