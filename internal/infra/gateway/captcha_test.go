//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/pkg/config"
)

func TestCaptchaVerify(t *testing.T) {
	t.Run("passes everything through when no secret is configured", func(t *testing.T) {
		v := gateway.NewCaptchaVerifier(config.CaptchaConfig{Timeout: time.Second})

		assert.False(t, v.Enabled())
		ok, err := v.Verify(context.Background(), "")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects an empty token without calling the verifier", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			t.Fatal("verifier should not be called for an empty token")
		}))
		defer srv.Close()

		v := gateway.NewCaptchaVerifier(config.CaptchaConfig{Secret: "s3cret", VerifyURL: srv.URL, Timeout: time.Second})

		ok, err := v.Verify(context.Background(), "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("accepts a verified token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			q := r.URL.Query()
			assert.Equal(t, "s3cret", q.Get("secret"))
			assert.Equal(t, "token-abc", q.Get("response"))
			_, _ = w.Write([]byte(`{"success":true,"score":0.9}`))
		}))
		defer srv.Close()

		v := gateway.NewCaptchaVerifier(config.CaptchaConfig{Secret: "s3cret", VerifyURL: srv.URL, Timeout: time.Second})

		ok, err := v.Verify(context.Background(), "token-abc")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects a failed token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		}))
		defer srv.Close()

		v := gateway.NewCaptchaVerifier(config.CaptchaConfig{Secret: "s3cret", VerifyURL: srv.URL, Timeout: time.Second})

		ok, err := v.Verify(context.Background(), "token-bad")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
