package response

import (
	"time"

	"curtaincall/internal/domain/member"
	"curtaincall/internal/usecase"

	"github.com/jinzhu/copier"
)

type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email"`
	Grade     string    `json:"grade"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  *MemberResponse `json:"user"`
}

type IDCheckResponse struct {
	Available bool `json:"available"`
}

type OAuthTokenResponse struct {
	AccessToken string `json:"access_token"`
}

func FromMember(m *member.Member) *MemberResponse {
	var resp MemberResponse
	_ = copier.Copy(&resp, m)
	resp.Email = m.Email()
	resp.Provider = string(m.Provider)
	return &resp
}

func FromAuthResult(result *usecase.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token: result.Token,
		User:  FromMember(result.Member),
	}
}
