package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/domain/dto"
	"github.com/ougirez/lwc/internal/pkg/constants"
	"github.com/ougirez/lwc/internal/pkg/logger"
	"github.com/ougirez/lwc/internal/pkg/utils"
)

// Service checks the single configured admin credential. It gates the catalog
// editor in a demo deployment and is not meant as real access control.
type Service struct {
	username string
	password string
	secret   string
	ttl      time.Duration
}

func NewAuthService(username, password, secret string, ttl time.Duration) *Service {
	return &Service{username: username, password: password, secret: secret, ttl: ttl}
}

func (svc *Service) LoginAdmin(ctx context.Context, request *dto.LoginRequest) (*domain.LoginResponse, error) {
	if err := dto.Validate(request); err != nil {
		return nil, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(request.Username), []byte(svc.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(request.Password), []byte(svc.password)) == 1
	if !userOK || !passOK {
		logger.Warnf(ctx, "login: rejected admin login for %q", request.Username)
		return nil, constants.ErrInvalidPassword
	}

	wrapper := &utils.AuthTokenWrapper{Username: request.Username}
	authToken, err := utils.GenerateAuthToken(wrapper, svc.secret, svc.ttl)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "login: admin %q signed in", request.Username)

	return &domain.LoginResponse{
		Username:  request.Username,
		AuthToken: authToken,
		ExpiresAt: wrapper.ExpiresAt,
	}, nil
}

// VerifyToken accepts only tokens signed with the configured secret for the configured admin.
func (svc *Service) VerifyToken(token string) (*utils.AuthTokenWrapper, error) {
	wrapper, err := utils.ParseAuthToken(token, svc.secret)
	if err != nil {
		return nil, err
	}
	if wrapper.Username != svc.username {
		return nil, constants.ErrUnauthorized
	}
	return wrapper, nil
}

func (svc *Service) TokenTTL() time.Duration {
	return svc.ttl
}
