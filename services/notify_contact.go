package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stride-footwear/site-backend/config"
	"github.com/stride-footwear/site-backend/models"
)

// resendEmailRequest is the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
}

// resendEmailResponse is the success response from the Resend API
type resendEmailResponse struct {
	ID string `json:"id"`
}

// resendErrorResponse is an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// ContactNotifier emails the site owner whenever someone submits the public
// contact form. Notification failures must never fail the submission itself,
// so callers log the returned error and move on.
//
// Required environment variables:
//   - RESEND_API_KEY: Resend API key
//   - CONTACT_NOTIFY_EMAIL: recipient address for notifications
//
// Optional:
//   - RESEND_FROM_EMAIL: sender address, defaults to [email protected]
type ContactNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

func NewContactNotifier(cfg map[string]string) *ContactNotifier {
	return &ContactNotifier{
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail: config.GetString(cfg, "RESEND_FROM_EMAIL", "STRIDE <[email protected]>"),
		toEmail:   config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", ""),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the notifier has enough configuration to send.
func (n *ContactNotifier) Enabled() bool {
	return n.apiKey != "" && n.toEmail != ""
}

// Notify sends an email summarizing a contact submission via the Resend API.
func (n *ContactNotifier) Notify(submission models.ContactSubmission) error {
	if !n.Enabled() {
		log.Debug().Msg("Contact notifications not configured, skipping")
		return nil
	}

	subject := "New contact form submission"
	if submission.Subject != nil && *submission.Subject != "" {
		subject = fmt.Sprintf("New contact form submission: %s", *submission.Subject)
	}

	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(submission.Name),
		html.EscapeString(submission.Email),
		html.EscapeString(submission.Message),
	)

	payload := resendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: subject,
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp resendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse resendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Sent contact notification via Resend")
	}

	return nil
}
