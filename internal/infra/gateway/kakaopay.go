package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"curtaincall/internal/pkg/config"
	"curtaincall/internal/pkg/errs"
)

// KakaoPayGateway talks to the wallet provider's one-time payment API. Both
// calls are form-encoded POSTs authorized with the admin key.
type KakaoPayGateway struct {
	cfg    config.KakaoConfig
	client *http.Client
}

func NewKakaoPayGateway(cfg config.KakaoConfig) *KakaoPayGateway {
	return &KakaoPayGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type KakaoReadyResult struct {
	TID            string `json:"tid"`
	NextRedirectPC string `json:"next_redirect_pc_url"`
	CreatedAt      string `json:"created_at"`
}

type KakaoApproveResult struct {
	AID         string `json:"aid"`
	TID         string `json:"tid"`
	ItemName    string `json:"item_name"`
	ApprovedAt  string `json:"approved_at"`
	AlreadyPaid bool   `json:"-"`
}

// walletError is the provider's error envelope. Code -702 means the
// transaction was already approved.
type walletError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

const codeAlreadyApproved = -702

// Ready registers the pending transaction and returns the tid plus the URL
// the buyer is redirected to for authorization.
func (g *KakaoPayGateway) Ready(ctx context.Context, orderID, userID, itemName string, quantity, totalAmount int) (*KakaoReadyResult, error) {
	form := url.Values{}
	form.Set("cid", g.cfg.CID)
	form.Set("partner_order_id", orderID)
	form.Set("partner_user_id", userID)
	form.Set("item_name", itemName)
	form.Set("quantity", strconv.Itoa(quantity))
	form.Set("total_amount", strconv.Itoa(totalAmount))
	form.Set("tax_free_amount", "0")
	form.Set("approval_url", g.cfg.ApprovalURL)
	form.Set("cancel_url", g.cfg.CancelURL)
	form.Set("fail_url", g.cfg.FailURL)

	body, status, err := g.post(ctx, "/v1/payment/ready", form)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &UpstreamError{Op: "wallet ready", Status: status, Body: body}
	}

	var result KakaoReadyResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errs.Wrap(err, "failed to decode wallet ready response")
	}
	if result.TID == "" || result.NextRedirectPC == "" {
		return nil, errs.New("wallet ready response missing tid or redirect url")
	}
	return &result, nil
}

// Approve captures the payment. A "-702 already approved" response is
// reported as success with AlreadyPaid set, so retried callbacks stay
// idempotent.
func (g *KakaoPayGateway) Approve(ctx context.Context, tid, orderID, userID, pgToken string) (*KakaoApproveResult, error) {
	form := url.Values{}
	form.Set("cid", g.cfg.CID)
	form.Set("tid", tid)
	form.Set("partner_order_id", orderID)
	form.Set("partner_user_id", userID)
	form.Set("pg_token", pgToken)

	body, status, err := g.post(ctx, "/v1/payment/approve", form)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		var werr walletError
		if json.Unmarshal(body, &werr) == nil && werr.Code == codeAlreadyApproved {
			return &KakaoApproveResult{TID: tid, AlreadyPaid: true}, nil
		}
		return nil, &UpstreamError{Op: "wallet approve", Status: status, Body: body}
	}

	var result KakaoApproveResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errs.Wrap(err, "failed to decode wallet approve response")
	}
	return &result, nil
}

func (g *KakaoPayGateway) post(ctx context.Context, path string, form url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to build wallet request")
	}
	req.Header.Set("Authorization", "KakaoAK "+g.cfg.AdminKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, 0, errs.Wrap(err, "wallet request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to read wallet response")
	}
	return body, resp.StatusCode, nil
}
