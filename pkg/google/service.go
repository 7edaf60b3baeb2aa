package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/balanco/balanco/pkg/user"
	log "github.com/sirupsen/logrus"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrUnauthenticated = errors.New("user is not authenticated with Google")

// Profile is the Google identity linked to the current user.
type Profile struct {
	Email      string
	Name       string
	PictureUrl string
}

type Service interface {
	GetProfile(ctx context.Context) (*Profile, error)
}

type ServiceImpl struct {
	auth *GoogleAuth
}

func NewService(auth *GoogleAuth) *ServiceImpl {
	return &ServiceImpl{
		auth: auth,
	}
}

func (s *ServiceImpl) GetProfile(ctx context.Context) (*Profile, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	client, err := s.auth.getClient(ctx, userId)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, ErrUnauthenticated
	}

	oauthService, err := goauth2.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to create Google OAuth client: %v", err)
		log.Error(err)
		return nil, err
	}

	info, err := oauthService.Userinfo.Get().Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve user info from Google: %v", err)
		log.Error(err)
		return nil, err
	}

	return &Profile{
		Email:      info.Email,
		Name:       info.Name,
		PictureUrl: info.Picture,
	}, nil
}
