package usecase

import (
	"context"
	"errors"
	"log/slog"

	"curtaincall/internal/domain/member"
	"curtaincall/internal/infra"
	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/pkg/jwt"
	"curtaincall/internal/pkg/password"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrDuplicateMemberID  = errors.New("member id already taken")
	ErrInvalidCredentials = errors.New("invalid id or password")
	ErrCaptchaRequired    = errors.New("captcha token required")
	ErrCaptchaRejected    = errors.New("captcha verification rejected")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type MemberRepository interface {
	Register(ctx context.Context, m *member.Member, hashedPwd string) error
	RegisterSNS(ctx context.Context, m *member.Member) error
	FindByID(ctx context.Context, id string) (*member.Member, error)
	FindCredentials(ctx context.Context, id string) (string, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type CaptchaVerifier interface {
	Enabled() bool
	Verify(ctx context.Context, token string) (bool, error)
}

type OAuthClient interface {
	NaverToken(ctx context.Context, code, state string) (string, error)
	NaverProfile(ctx context.Context, accessToken string) (*gateway.OAuthProfile, error)
	KakaoToken(ctx context.Context, code string) (string, error)
	KakaoProfile(ctx context.Context, accessToken string) (*gateway.OAuthProfile, error)
	GoogleToken(ctx context.Context, code string) (string, error)
	GoogleProfile(ctx context.Context, accessToken string) (*gateway.OAuthProfile, error)
}

type RegisterInput struct {
	ID    string
	Pwd   string
	Name  string
	Phone string
	Email string
}

// AuthResult pairs the signed token with the authenticated member.
type AuthResult struct {
	Token  string
	Member *member.Member
}

type AuthUseCase interface {
	Login(ctx context.Context, id, pwd, captchaToken string) (*AuthResult, error)
	CheckID(ctx context.Context, id string) (available bool, err error)
	Register(ctx context.Context, input RegisterInput) (*member.Member, error)
	NaverSignIn(ctx context.Context, accessToken string) (*AuthResult, error)
	KakaoSignIn(ctx context.Context, accessToken string) (*AuthResult, error)
	GoogleSignIn(ctx context.Context, accessToken string) (*AuthResult, error)
	ExchangeToken(ctx context.Context, provider member.Provider, code, state string) (string, error)
	ValidateToken(tokenString string) (userID string, err error)
}

type authUseCaseImpl struct {
	memberRepo MemberRepository
	coupons    CouponUseCase
	captcha    CaptchaVerifier
	oauth      OAuthClient
	jwtService *jwt.Service
}

func NewAuthUseCase(
	memberRepo MemberRepository,
	coupons CouponUseCase,
	captcha CaptchaVerifier,
	oauth OAuthClient,
	jwtService *jwt.Service,
) AuthUseCase {
	return &authUseCaseImpl{
		memberRepo: memberRepo,
		coupons:    coupons,
		captcha:    captcha,
		oauth:      oauth,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, id, pwd, captchaToken string) (*AuthResult, error) {
	if a.captcha.Enabled() {
		if captchaToken == "" {
			return nil, ErrCaptchaRequired
		}
		ok, err := a.captcha.Verify(ctx, captchaToken)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCaptchaRejected
		}
	}

	hashedPwd, err := a.memberRepo.FindCredentials(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hashedPwd, pwd); err != nil {
		return nil, ErrInvalidCredentials
	}

	m, err := a.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	return a.issueToken(m)
}

func (a *authUseCaseImpl) CheckID(ctx context.Context, id string) (bool, error) {
	exists, err := a.memberRepo.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (a *authUseCaseImpl) Register(ctx context.Context, input RegisterInput) (*member.Member, error) {
	m, err := member.NewMember(input.ID, input.Name, input.Phone, input.Email, member.ProviderLocal)
	if err != nil {
		return nil, err
	}

	hashedPwd, err := password.HashPassword(input.Pwd)
	if err != nil {
		return nil, err
	}

	if err := a.memberRepo.Register(ctx, m, hashedPwd); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateMemberID
		}
		return nil, err
	}

	a.issueWelcomeCoupon(ctx, m)
	return m, nil
}

// issueWelcomeCoupon is best-effort. Registration already succeeded; a failed
// coupon write is logged and swallowed.
func (a *authUseCaseImpl) issueWelcomeCoupon(ctx context.Context, m *member.Member) {
	if err := a.coupons.IssueWelcome(ctx, m.ID, m.Name); err != nil {
		slog.Error("failed to issue welcome coupon", "user_id", m.ID, "error", err)
	}
}

func (a *authUseCaseImpl) ExchangeToken(ctx context.Context, provider member.Provider, code, state string) (string, error) {
	switch provider {
	case member.ProviderNaver:
		return a.oauth.NaverToken(ctx, code, state)
	case member.ProviderKakao:
		return a.oauth.KakaoToken(ctx, code)
	case member.ProviderGoogle:
		return a.oauth.GoogleToken(ctx, code)
	default:
		return "", ErrTokenValidation
	}
}

func (a *authUseCaseImpl) NaverSignIn(ctx context.Context, accessToken string) (*AuthResult, error) {
	profile, err := a.oauth.NaverProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return a.snsSignIn(ctx, member.ProviderNaver, profile)
}

func (a *authUseCaseImpl) KakaoSignIn(ctx context.Context, accessToken string) (*AuthResult, error) {
	profile, err := a.oauth.KakaoProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return a.snsSignIn(ctx, member.ProviderKakao, profile)
}

func (a *authUseCaseImpl) GoogleSignIn(ctx context.Context, accessToken string) (*AuthResult, error) {
	profile, err := a.oauth.GoogleProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return a.snsSignIn(ctx, member.ProviderGoogle, profile)
}

// snsSignIn signs an existing member in or registers a new one keyed by the
// provider-issued id. First sign-in gets the welcome coupon, same as local
// registration.
func (a *authUseCaseImpl) snsSignIn(ctx context.Context, provider member.Provider, profile *gateway.OAuthProfile) (*AuthResult, error) {
	existing, err := a.memberRepo.FindByID(ctx, profile.SNSID)
	if err == nil {
		return a.issueToken(existing)
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	email := profile.Email
	if email == "" {
		email = "user" + profile.SNSID + "@" + string(provider) + ".local"
	}

	m, err := member.NewMember(profile.SNSID, profile.Name, profile.Phone, email, provider)
	if err != nil {
		return nil, err
	}

	if err := a.memberRepo.RegisterSNS(ctx, m); err != nil {
		// A concurrent first sign-in may have won the insert.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			existing, findErr := a.memberRepo.FindByID(ctx, profile.SNSID)
			if findErr != nil {
				return nil, findErr
			}
			return a.issueToken(existing)
		}
		return nil, err
	}

	a.issueWelcomeCoupon(ctx, m)
	return a.issueToken(m)
}

func (a *authUseCaseImpl) issueToken(m *member.Member) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(m.ID)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &AuthResult{Token: token, Member: m}, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", ErrTokenValidation
	}
	return claims.UserID, nil
}
