// Package telegram optionally pushes a compact per-sector digest of the
// rendered newsletter to a Telegram chat or channel.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finbrief/internal/logger"
	"finbrief/internal/metrics"
	"finbrief/internal/news"
)

const (
	headlinesPerSector = 3
	maxMessageLen      = 4000 // Telegram caps messages at ~4096 chars
)

// SendDigest formats the payload into one digest message and sends it.
func SendDigest(token, chatID string, payload news.Payload, date string) error {
	msg := formatDigest(payload, date, headlinesPerSector)
	if len(msg) > maxMessageLen {
		msg = formatDigest(payload, date, 1)
	}

	if err := SendMessage(token, chatID, msg); err != nil {
		return err
	}
	metrics.Global.IncrementTelegramMessagesSent()
	return nil
}

// formatDigest builds the HTML digest: a date header and, per sector,
// up to perSector linked headlines.
func formatDigest(payload news.Payload, date string, perSector int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 <b>Financial Newsletter %s</b>\n", date))
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	for _, section := range payload.Sections {
		b.WriteString(fmt.Sprintf("<b>%s</b>\n", section.Sector))
		for i, a := range section.Articles {
			if i >= perSector {
				b.WriteString(fmt.Sprintf("… and %d more\n", len(section.Articles)-perSector))
				break
			}
			b.WriteString(fmt.Sprintf("• <a href=\"%s\">%s</a>\n", a.Link, a.Title))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// SendMessage sends a text message with retry logic.
func SendMessage(token, chatID, text string) error {
	maxRetries := 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := sendMessageOnce(token, chatID, text)
		if err == nil {
			logger.Info("message sent to telegram", "attempt", attempt)
			return nil
		}

		logger.Warn("telegram send failed", "attempt", attempt, "max", maxRetries, "error", err)

		if attempt < maxRetries {
			// Exponential backoff: 2^attempt seconds
			waitTime := time.Duration(1<<attempt) * time.Second
			time.Sleep(waitTime)
		}
	}

	return fmt.Errorf("can't send message after %d tries", maxRetries)
}

// sendMessageOnce does one try to send the message.
func sendMessageOnce(token, chatID, text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)

	payload := map[string]interface{}{
		"chat_id":                  chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logger.Warn("failed to close response body", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode != 200 {
		return fmt.Errorf("telegram API error: status %d", resp.StatusCode)
	}

	return nil
}
