package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"curtaincall/internal/pkg/config"
	"curtaincall/internal/pkg/errs"
)

// Endpoints of the three social providers.
const (
	naverTokenURL   = "https://nid.naver.com/oauth2.0/token"
	naverProfileURL = "https://openapi.naver.com/v1/nid/me"

	kakaoTokenURL   = "https://kauth.kakao.com/oauth/token"
	kakaoProfileURL = "https://kapi.kakao.com/v2/user/me"

	googleTokenURL   = "https://oauth2.googleapis.com/token"
	googleProfileURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// OAuthProfile is the provider-neutral projection of a social account.
// SNSID is the provider-issued id, used as the member id.
type OAuthProfile struct {
	SNSID string
	Name  string
	Email string
	Phone string
}

// OAuthGateway exchanges authorization codes for tokens and fetches profiles
// from the social providers.
type OAuthGateway struct {
	cfg    config.OAuthConfig
	client *http.Client
}

func NewOAuthGateway(cfg config.OAuthConfig) *OAuthGateway {
	return &OAuthGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// NaverToken exchanges the authorization code and state for an access token.
func (g *OAuthGateway) NaverToken(ctx context.Context, code, state string) (string, error) {
	params := url.Values{}
	params.Set("grant_type", "authorization_code")
	params.Set("client_id", g.cfg.NaverClientID)
	params.Set("client_secret", g.cfg.NaverClientSecret)
	params.Set("code", code)
	params.Set("state", state)

	body, err := g.getJSON(ctx, naverTokenURL+"?"+params.Encode(), "")
	if err != nil {
		return "", err
	}
	return parseAccessToken(body)
}

func (g *OAuthGateway) NaverProfile(ctx context.Context, accessToken string) (*OAuthProfile, error) {
	body, err := g.getJSON(ctx, naverProfileURL, accessToken)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Response struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Email  string `json:"email"`
			Mobile string `json:"mobile"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errs.Wrap(err, "failed to parse naver profile")
	}
	if payload.Response.ID == "" {
		return nil, errs.New("naver profile missing user id")
	}

	return &OAuthProfile{
		SNSID: payload.Response.ID,
		Name:  payload.Response.Name,
		Email: payload.Response.Email,
		Phone: payload.Response.Mobile,
	}, nil
}

func (g *OAuthGateway) KakaoToken(ctx context.Context, code string) (string, error) {
	params := url.Values{}
	params.Set("grant_type", "authorization_code")
	params.Set("client_id", g.cfg.KakaoClientID)
	params.Set("client_secret", g.cfg.KakaoClientSecret)
	params.Set("redirect_uri", g.cfg.KakaoRedirectURI)
	params.Set("code", code)

	body, err := g.postForm(ctx, kakaoTokenURL, params)
	if err != nil {
		return "", err
	}
	return parseAccessToken(body)
}

// KakaoProfile falls back to a placeholder name when the account hides its
// nickname, matching how accounts were created historically.
func (g *OAuthGateway) KakaoProfile(ctx context.Context, accessToken string) (*OAuthProfile, error) {
	body, err := g.getJSON(ctx, kakaoProfileURL, accessToken)
	if err != nil {
		return nil, err
	}

	var payload struct {
		ID         int64 `json:"id"`
		Properties struct {
			Nickname string `json:"nickname"`
		} `json:"properties"`
		KakaoAccount struct {
			Email       string `json:"email"`
			PhoneNumber string `json:"phone_number"`
		} `json:"kakao_account"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errs.Wrap(err, "failed to parse kakao profile")
	}
	if payload.ID == 0 {
		return nil, errs.New("kakao profile missing user id")
	}

	name := payload.Properties.Nickname
	if name == "" {
		name = "이름없음"
	}

	return &OAuthProfile{
		SNSID: strconv.FormatInt(payload.ID, 10),
		Name:  name,
		Email: payload.KakaoAccount.Email,
		Phone: payload.KakaoAccount.PhoneNumber,
	}, nil
}

func (g *OAuthGateway) GoogleToken(ctx context.Context, code string) (string, error) {
	params := url.Values{}
	params.Set("grant_type", "authorization_code")
	params.Set("client_id", g.cfg.GoogleClientID)
	params.Set("client_secret", g.cfg.GoogleSecret)
	params.Set("redirect_uri", g.cfg.GoogleRedirectURI)
	params.Set("code", code)

	body, err := g.postForm(ctx, googleTokenURL, params)
	if err != nil {
		return "", err
	}
	return parseAccessToken(body)
}

func (g *OAuthGateway) GoogleProfile(ctx context.Context, accessToken string) (*OAuthProfile, error) {
	body, err := g.getJSON(ctx, googleProfileURL, accessToken)
	if err != nil {
		return nil, err
	}

	var payload struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errs.Wrap(err, "failed to parse google profile")
	}
	if payload.ID == "" {
		return nil, errs.New("google profile missing user id")
	}

	return &OAuthProfile{
		SNSID: payload.ID,
		Name:  payload.Name,
		Email: payload.Email,
	}, nil
}

func parseAccessToken(body []byte) (string, error) {
	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", errs.Wrap(err, "failed to parse token response")
	}
	if token.AccessToken == "" {
		return "", errs.New("token response missing access_token")
	}
	return token.AccessToken, nil
}

func (g *OAuthGateway) getJSON(ctx context.Context, rawURL, bearer string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build oauth request")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return g.do(req)
}

func (g *OAuthGateway) postForm(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build oauth request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return g.do(req)
}

func (g *OAuthGateway) do(req *http.Request) ([]byte, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "oauth request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read oauth response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.New("oauth provider rejected request: " + string(body))
	}
	return body, nil
}
