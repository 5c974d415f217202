package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

// TwilioSender delivers SMS notifications through Twilio's Messages API.
type TwilioSender struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
	BaseURL    string
	HTTPClient *http.Client

	logger *slog.Logger
}

func NewTwilioSender(accountSID, authToken, from, to string, httpClient *http.Client, logger *slog.Logger) *TwilioSender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TwilioSender{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		To:         to,
		BaseURL:    defaultTwilioBaseURL,
		HTTPClient: httpClient,
		logger:     logger,
	}
}

// Send delivers one SMS to the configured recipient. An unconfigured sender
// or recipient number means SMS is disabled for this deployment; that is a
// silent skip, not an error.
func (s *TwilioSender) Send(ctx context.Context, message string) error {
	if s.From == "" || s.To == "" {
		s.logger.Debug("sms not configured, skipping notification")
		return nil
	}

	form := url.Values{
		"Body": {message},
		"From": {s.From},
		"To":   {s.To},
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.BaseURL, s.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.AccountSID, s.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	s.logger.Info("sms sent", "to", s.To)
	return nil
}
