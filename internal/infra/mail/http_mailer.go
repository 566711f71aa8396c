// Package mail delivers transactional template mail over HTTP.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"greeniecart/config"
	"greeniecart/internal/domain/service"
)

// templateMailRequest is the payload the template mail service accepts.
type templateMailRequest struct {
	TemplateID string            `json:"template_id"`
	To         string            `json:"to"`
	Variables  map[string]string `json:"variables,omitempty"`
}

const defaultPasscodeTTL = 10 * time.Minute

// httpMailer implements Mailer by POSTing template mail requests to a
// configured HTTP endpoint.
type httpMailer struct {
	cfg         *config.MailerConfig
	passcodeTTL time.Duration
	httpClient  *http.Client
	logger      *slog.Logger
}

// noopMailer logs and drops mail when no mailer endpoint is configured.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendVerificationMail(_ context.Context, to, _ string) error {
	m.logger.Debug("[NoopMail] Mailer not configured, dropping verification mail",
		slog.String("to", to),
	)

	return nil
}

func (m *noopMailer) SendPasscodeMail(_ context.Context, to, _ string) error {
	m.logger.Debug("[NoopMail] Mailer not configured, dropping passcode mail",
		slog.String("to", to),
	)

	return nil
}

// NewHTTPMailer creates a Mailer based on configuration. Without an endpoint
// the returned mailer is a logged no-op, which keeps development setups
// working without a mail service.
func NewHTTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mailer == nil || cfg.Mailer.Endpoint == "" {
		logger.Info("Mailer not configured, using no-op mailer")

		return &noopMailer{logger: logger}
	}

	passcodeTTL := defaultPasscodeTTL
	if cfg.Auth != nil && cfg.Auth.PasscodeTTL > 0 {
		passcodeTTL = cfg.Auth.PasscodeTTL
	}

	return &httpMailer{
		cfg:         cfg.Mailer,
		passcodeTTL: passcodeTTL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// SendVerificationMail sends the account verification mail with its link.
func (m *httpMailer) SendVerificationMail(ctx context.Context, to, token string) error {
	return m.send(ctx, m.cfg.VerificationTemplateID, to, map[string]string{
		"verify_url": m.cfg.VerifyBaseURL + "/verify-email?token=" + token,
	})
}

// SendPasscodeMail sends the login passcode challenge mail. The validity
// window in the template comes from the same TTL the passcode store enforces.
func (m *httpMailer) SendPasscodeMail(ctx context.Context, to, code string) error {
	return m.send(ctx, m.cfg.PasscodeTemplateID, to, map[string]string{
		"passcode":   code,
		"expires_in": fmt.Sprintf("%d minutes", int(m.passcodeTTL.Minutes())),
	})
}

func (m *httpMailer) send(ctx context.Context, templateID, to string, variables map[string]string) error {
	body, err := json.Marshal(templateMailRequest{
		TemplateID: templateID,
		To:         to,
		Variables:  variables,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mail service returned non-success status: %d", resp.StatusCode)
	}

	m.logger.Info("[Mail] Template mail sent",
		slog.String("template_id", templateID),
		slog.String("to", to),
	)

	return nil
}
