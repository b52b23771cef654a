package request

import "curtaincall/internal/usecase"

type LoginRequest struct {
	ID             string `json:"id" binding:"required"`
	Pwd            string `json:"pwd" binding:"required"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type IDCheckRequest struct {
	ID string `json:"id" binding:"required"`
}

type RegisterRequest struct {
	ID    string `json:"id" binding:"required"`
	Pwd   string `json:"pwd" binding:"required,min=8"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"required,email"`
}

func (r *RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		ID:    r.ID,
		Pwd:   r.Pwd,
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}

// OAuthCodeRequest carries the authorization code from the provider's
// redirect. State is only used by naver.
type OAuthCodeRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

// OAuthTokenRequest carries the provider access token for the profile step.
type OAuthTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
