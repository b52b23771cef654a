package member

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidID    = errors.New("invalid member id")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidName  = errors.New("invalid member name")
)

// Provider is the registration channel.
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderNaver  Provider = "naver"
	ProviderKakao  Provider = "kakao"
	ProviderGoogle Provider = "google"
)

func (p Provider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderNaver, ProviderKakao, ProviderGoogle:
		return true
	default:
		return false
	}
}

// Member id is a login id for local accounts and the provider-issued sns id
// for OAuth accounts. Emails are stored split into name and domain, matching
// the existing member table layout.
type Member struct {
	ID          string
	Name        string
	Phone       string
	EmailName   string
	EmailDomain string
	Grade       string
	Provider    Provider
	CreatedAt   time.Time
}

const defaultGrade = "BRONZE"

func NewMember(id, name, phone, email string, provider Provider) (*Member, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if name == "" {
		return nil, ErrInvalidName
	}

	emailName, emailDomain, err := SplitEmail(email)
	if err != nil {
		return nil, err
	}

	if !provider.IsValid() {
		provider = ProviderLocal
	}

	return &Member{
		ID:          id,
		Name:        name,
		Phone:       phone,
		EmailName:   emailName,
		EmailDomain: emailDomain,
		Grade:       defaultGrade,
		Provider:    provider,
	}, nil
}

func (m *Member) Email() string {
	return m.EmailName + "@" + m.EmailDomain
}

func SplitEmail(email string) (name, domain string, err error) {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidEmail
	}
	return parts[0], parts[1], nil
}
