package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greeniecart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPMailer_SendVerificationMail(t *testing.T) {
	var received templateMailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{Mailer: &config.MailerConfig{
		Endpoint:               server.URL,
		VerificationTemplateID: "verify-account",
		PasscodeTemplateID:     "login-passcode",
		VerifyBaseURL:          "https://greeniecart.app",
	}}

	mailer := NewHTTPMailer(cfg, testLogger())

	err := mailer.SendVerificationMail(context.Background(), "user@example.com", "token-123")
	require.NoError(t, err)

	assert.Equal(t, "verify-account", received.TemplateID)
	assert.Equal(t, "user@example.com", received.To)
	assert.Equal(t, "https://greeniecart.app/verify-email?token=token-123", received.Variables["verify_url"])
}

func TestHTTPMailer_SendPasscodeMail(t *testing.T) {
	var received templateMailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	cfg := &config.Config{Mailer: &config.MailerConfig{
		Endpoint:           server.URL,
		PasscodeTemplateID: "login-passcode",
	}}

	mailer := NewHTTPMailer(cfg, testLogger())

	err := mailer.SendPasscodeMail(context.Background(), "user@example.com", "482915")
	require.NoError(t, err)

	assert.Equal(t, "login-passcode", received.TemplateID)
	assert.Equal(t, "482915", received.Variables["passcode"])
	assert.Equal(t, "10 minutes", received.Variables["expires_in"])
}

func TestHTTPMailer_PasscodeMailValidityFollowsConfiguredTTL(t *testing.T) {
	var received templateMailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		Mailer: &config.MailerConfig{
			Endpoint:           server.URL,
			PasscodeTemplateID: "login-passcode",
		},
		Auth: &config.AuthConfig{PasscodeTTL: 5 * time.Minute},
	}

	mailer := NewHTTPMailer(cfg, testLogger())

	err := mailer.SendPasscodeMail(context.Background(), "user@example.com", "482915")
	require.NoError(t, err)

	assert.Equal(t, "5 minutes", received.Variables["expires_in"])
}

func TestHTTPMailer_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := &config.Config{Mailer: &config.MailerConfig{Endpoint: server.URL}}
	mailer := NewHTTPMailer(cfg, testLogger())

	err := mailer.SendPasscodeMail(context.Background(), "user@example.com", "482915")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}

func TestHTTPMailer_NoopWithoutEndpoint(t *testing.T) {
	mailer := NewHTTPMailer(&config.Config{}, testLogger())

	assert.NoError(t, mailer.SendVerificationMail(context.Background(), "user@example.com", "token"))
	assert.NoError(t, mailer.SendPasscodeMail(context.Background(), "user@example.com", "123456"))
}
