package utils

import (
	"log"
	"time"

	"upskillr/config"

	"github.com/go-resty/resty/v2"
)

// NotifyCertificateIssued posts a certificate-issued event to the configured
// webhook. Best effort: failures are logged, never retried.
func NotifyCertificateIssued(certificateID string, userID, courseID uint, score int) {
	url := config.AppConfig.WebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":         "certificate.issued",
			"certificateId": certificateID,
			"userId":        userID,
			"courseId":      courseID,
			"score":         score,
			"issuedAt":      time.Now().UTC().Format(time.RFC3339),
		}).
		Post(url)
	if err != nil {
		log.Printf("[WEBHOOK] Error posting certificate event: %v", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("[WEBHOOK] Certificate event rejected: %d", resp.StatusCode())
	}
}
