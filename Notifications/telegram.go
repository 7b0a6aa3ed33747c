package Notifications

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/rdclab2001/rdc-backend/Constants"
)

// Telegram posts plain-text alerts to a bot chat. Missing credentials turn
// it into a logged no-op, same as the Mailer.
type Telegram struct {
	BotToken string
	ChatID   string
	Endpoint string
	Client   *http.Client
}

func NewTelegram(botToken, chatID string) *Telegram {
	if botToken == "" || chatID == "" {
		log.Println("BOT_TOKEN or CHAT_ID not set, telegram alerts disabled")
	}
	return &Telegram{
		BotToken: botToken,
		ChatID:   chatID,
		Endpoint: Constants.TelegramEndpoint,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *Telegram) Enabled() bool {
	return t != nil && t.BotToken != "" && t.ChatID != ""
}

// SendAlert posts one message to the configured chat. Best-effort, no retry.
func (t *Telegram) SendAlert(message string) error {
	if !t.Enabled() {
		log.Println("telegram alerts disabled, dropping alert")
		return nil
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.Endpoint, t.BotToken)
	data := url.Values{}
	data.Set("chat_id", t.ChatID)
	data.Set("text", message)

	res, err := t.Client.PostForm(endpoint, data)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 400 {
		return fmt.Errorf("telegram status %d: %s", res.StatusCode, string(body))
	}
	return nil
}
