package usecase

import (
	"context"
	"errors"

	"curtaincall/internal/infra"
	"curtaincall/internal/pkg/jwt"
	"curtaincall/internal/pkg/password"
)

var (
	ErrAdminNotFound           = errors.New("admin not found")
	ErrAdminInvalidCredentials = errors.New("admin password does not match")
)

type AdminRepository interface {
	FindPasswordHash(ctx context.Context, adminID string) (string, error)
}

// AdminTokenValidator is the narrow slice of AdminUseCase the admin
// middleware needs.
type AdminTokenValidator interface {
	ValidateAdminToken(tokenString string) (adminID string, err error)
}

type AdminUseCase interface {
	Login(ctx context.Context, adminID, pwd string) (token string, err error)
	ValidateAdminToken(tokenString string) (adminID string, err error)
}

type adminUseCaseImpl struct {
	adminRepo  AdminRepository
	jwtService *jwt.AdminService
}

func NewAdminUseCase(adminRepo AdminRepository, jwtService *jwt.AdminService) AdminUseCase {
	return &adminUseCaseImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login compares the password against the stored hash and issues a
// short-lived admin token. Admin accounts are provisioned out of band, so
// there is no registration path.
func (a *adminUseCaseImpl) Login(ctx context.Context, adminID, pwd string) (string, error) {
	hash, err := a.adminRepo.FindPasswordHash(ctx, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrAdminNotFound
		}
		return "", err
	}

	if err := password.ComparePassword(hash, pwd); err != nil {
		return "", ErrAdminInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(adminID)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}

func (a *adminUseCaseImpl) ValidateAdminToken(tokenString string) (string, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", ErrTokenValidation
	}
	return claims.AdminID, nil
}
