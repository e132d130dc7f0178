package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// Send delivers an HTML email synchronously. Returns an error when SMTP is
// not configured so callers on critical paths (email verification) can
// surface it.
func Send(to string, subject string, htmlBody string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	sender := os.Getenv("SMTP_SENDER")

	if host == "" || port == "" {
		return fmt.Errorf("SMTP not configured")
	}
	if sender == "" {
		sender = "no-reply@localhost"
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			htmlBody,
	)

	return smtp.SendMail(host+":"+port, auth, sender, []string{to}, msg)
}

// Submit queues a fire-and-forget send. Delivery failures are logged and
// never reach the caller; the request that triggered the email must not
// fail on it.
func Submit(to string, subject string, htmlBody string) {
	go func() {
		if err := Send(to, subject, htmlBody); err != nil {
			log.Printf("mailer: send to %s failed: %v", to, err)
		}
	}()
}
