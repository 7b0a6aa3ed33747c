package Notifications

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/rdclab2001/rdc-backend/Constants"
)

// Mailer submits transactional email to the Brevo API. A Mailer without an
// API key is a logged no-op so the rest of the app keeps working with email
// switched off.
type Mailer struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	Endpoint    string
	Client      *http.Client
}

func NewMailer(apiKey, senderEmail string) *Mailer {
	if apiKey == "" {
		log.Println("BREVO_API_KEY not set, email dispatch disabled")
	}
	return &Mailer{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  Constants.SenderName,
		Endpoint:    Constants.BrevoEndpoint,
		Client:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.APIKey != ""
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type emailAttachment struct {
	Content string `json:"content"`
	Name    string `json:"name"`
}

type emailPayload struct {
	Sender      emailAddress      `json:"sender"`
	To          []emailAddress    `json:"to"`
	Subject     string            `json:"subject"`
	HtmlContent string            `json:"htmlContent"`
	Attachment  []emailAttachment `json:"attachment,omitempty"`
}

// Send posts one HTML email, with an optional attachment, to Brevo. Failures
// come back as errors for the caller to log; nothing is retried.
func (m *Mailer) Send(toEmail, toName, subject, html string, attachment []byte, attachmentName string) error {
	if !m.Enabled() {
		log.Printf("email dispatch disabled, dropping %q to %s", subject, toEmail)
		return nil
	}

	payload := emailPayload{
		Sender:      emailAddress{Email: m.SenderEmail, Name: m.SenderName},
		To:          []emailAddress{{Email: toEmail, Name: toName}},
		Subject:     subject,
		HtmlContent: html,
	}
	if len(attachment) > 0 {
		payload.Attachment = []emailAttachment{{
			Content: base64.StdEncoding.EncodeToString(attachment),
			Name:    attachmentName,
		}}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.Endpoint, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Add("accept", "application/json")
	req.Header.Add("api-key", m.APIKey)
	req.Header.Add("content-type", "application/json")

	res, err := m.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 400 {
		return fmt.Errorf("brevo status %d: %s", res.StatusCode, string(body))
	}

	log.Printf("email %q sent to %s, status %d", subject, toEmail, res.StatusCode)
	return nil
}
