package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"

	verificationSuccess = "SUCCESS"
)

// Client talks to PayPal's OAuth and webhook verification endpoints.
type Client struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	WebhookID    string
	HTTPClient   *http.Client
}

// NewClient selects the sandbox or live API host based on env ("live" means
// production, anything else is sandbox).
func NewClient(env, clientID, clientSecret, webhookID string, httpClient *http.Client) *Client {
	baseURL := sandboxBaseURL
	if env == "live" {
		baseURL = liveBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:      baseURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		WebhookID:    webhookID,
		HTTPClient:   httpClient,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// AccessToken exchanges the client credentials for a bearer token.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.ClientID, c.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch access token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	return token.AccessToken, nil
}

// SignatureHeaders are the five transmission headers PayPal sends with every
// webhook delivery.
type SignatureHeaders struct {
	TransmissionID   string
	TransmissionTime string
	CertURL          string
	AuthAlgo         string
	TransmissionSig  string
}

// SignatureHeadersFromRequest extracts the verification headers. ok is false
// if any of the five is missing.
func SignatureHeadersFromRequest(r *http.Request) (SignatureHeaders, bool) {
	h := SignatureHeaders{
		TransmissionID:   r.Header.Get("paypal-transmission-id"),
		TransmissionTime: r.Header.Get("paypal-transmission-time"),
		CertURL:          r.Header.Get("paypal-cert-url"),
		AuthAlgo:         r.Header.Get("paypal-auth-algo"),
		TransmissionSig:  r.Header.Get("paypal-transmission-sig"),
	}

	ok := h.TransmissionID != "" &&
		h.TransmissionTime != "" &&
		h.CertURL != "" &&
		h.AuthAlgo != "" &&
		h.TransmissionSig != ""

	return h, ok
}

type verifyRequest struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}

type verifyResponse struct {
	VerificationStatus string `json:"verification_status"`
}

// VerifyWebhookSignature submits the transmission headers and the raw event
// bytes to PayPal. The body must be the exact bytes received on the wire;
// re-serializing it would invalidate the signature. Only a status of
// "SUCCESS" verifies.
func (c *Client) VerifyWebhookSignature(ctx context.Context, headers SignatureHeaders, rawBody []byte) (bool, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return false, err
	}

	payload, err := json.Marshal(verifyRequest{
		AuthAlgo:         headers.AuthAlgo,
		CertURL:          headers.CertURL,
		TransmissionID:   headers.TransmissionID,
		TransmissionSig:  headers.TransmissionSig,
		TransmissionTime: headers.TransmissionTime,
		WebhookID:        c.WebhookID,
		WebhookEvent:     json.RawMessage(rawBody),
	})
	if err != nil {
		return false, fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/notifications/verify-webhook-signature", bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("verify webhook signature: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// A non-SUCCESS answer of any kind is a failed verification, not an
	// internal error.
	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, nil
	}

	return result.VerificationStatus == verificationSuccess, nil
}
