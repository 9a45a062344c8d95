// SPDX-License-Identifier: GPL-3.0-only

package notifications

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"strconv"

	"greetme-server/commons"

	"gopkg.in/gomail.v2"
)

var emailTemplates = map[string]string{
	"verification": `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Welcome to GreetMe!</h1>
  <p>Thank you for registering with GreetMe. Please click the link below to verify your email address:</p>
  <a href="{{.verification_link}}">Verify Email Address</a>
  <p>If you didn't create an account with GreetMe, you can safely ignore this email.</p>
  <p>Best regards,<br>The GreetMe Team</p>
</div>`,
	"welcome": `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Welcome to GreetMe, {{.name}}!</h1>
  <p>Your account has been verified successfully.</p>
  <p>Best regards,<br>The GreetMe Team</p>
</div>`,
}

// ConsoleClient logs the notice instead of sending it. This is the
// development default.
func ConsoleClient(data NotificationData) error {
	commons.Logger.Info("=== EMAIL NOTIFICATION ===")
	commons.Logger.Infof("To: %s", data.To)
	commons.Logger.Infof("Subject: %s", data.Subject)
	for key, value := range data.Variables {
		commons.Logger.Infof("  %s: %v", key, value)
	}
	commons.Logger.Info("==========================")
	return nil
}

func SMTPClient(data NotificationData) error {
	commons.Logger.Debug("Sending email via SMTP")

	smtpHost := commons.GetEnv("SMTP_HOST")
	if smtpHost == "" {
		return fmt.Errorf("SMTP_HOST environment variable is not set")
	}

	smtpPort := commons.GetEnv("SMTP_PORT")
	if smtpPort == "" {
		return fmt.Errorf("SMTP_PORT environment variable is not set")
	}

	username := commons.GetEnv("SMTP_USERNAME")
	if username == "" {
		return fmt.Errorf("SMTP_USERNAME environment variable is not set")
	}

	password := commons.GetEnv("SMTP_PASSWORD")
	if password == "" {
		return fmt.Errorf("SMTP_PASSWORD environment variable is not set")
	}

	fromEmail := commons.GetEnv("SMTP_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SMTP_FROM_EMAIL environment variable is not set")
	}

	fromName := commons.GetEnv("SMTP_FROM_NAME", "GreetMe")

	if data.To == "" {
		return fmt.Errorf("'to' field is required")
	}

	htmlBody, err := renderTemplate(data.Template, data.Variables)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP port: %s", smtpPort)
	}

	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(fromEmail, fromName))
	message.SetHeader("To", data.To)
	message.SetHeader("Subject", data.Subject)
	message.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(smtpHost, port, username, password)
	dialer.TLSConfig = &tls.Config{
		ServerName:         smtpHost,
		InsecureSkipVerify: false,
	}

	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	commons.Logger.Info("Email sent successfully via SMTP")
	return nil
}

func renderTemplate(templateName string, variables map[string]any) (string, error) {
	content, ok := emailTemplates[templateName]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", templateName)
	}

	tmpl, err := template.New(templateName).Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	return buf.String(), nil
}
