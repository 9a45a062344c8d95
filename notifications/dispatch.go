// SPDX-License-Identifier: GPL-3.0-only

// Package notifications delivers fire-and-forget account emails. Delivery
// failures are logged and never reach the caller.
package notifications

import (
	"fmt"
	"net/url"

	"greetme-server/commons"
)

// Dispatcher routes notices to the provider selected by EMAIL_PROVIDER
// (console by default). It implements accounts.Notifier.
type Dispatcher struct{}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) SendVerification(email, token string) {
	frontendURL := commons.GetEnv("FRONTEND_URL", "http://localhost:3000")
	verificationLink := fmt.Sprintf("%s/verify?token=%s&email=%s",
		frontendURL, token, url.QueryEscape(email))

	go dispatch(NotificationData{
		To:       email,
		Subject:  "Verify your GreetMe account",
		Template: "verification",
		Variables: map[string]any{
			"verification_link": verificationLink,
		},
	})
}

func (d *Dispatcher) SendWelcome(email, name string) {
	go dispatch(NotificationData{
		To:       email,
		Subject:  fmt.Sprintf("Welcome to GreetMe, %s!", name),
		Template: "welcome",
		Variables: map[string]any{
			"name": name,
		},
	})
}

func dispatch(data NotificationData) {
	provider := Provider(commons.GetEnv("EMAIL_PROVIDER", string(Console)))
	commons.Logger.Debugf("Dispatching %s notification via %s", data.Template, provider)

	var err error
	switch provider {
	case SMTP:
		err = SMTPClient(data)
	case Console:
		err = ConsoleClient(data)
	default:
		err = fmt.Errorf("unsupported email provider: %s", provider)
	}

	if err != nil {
		commons.Logger.Errorf("Failed to dispatch %s notification to %s: %v", data.Template, data.To, err)
		return
	}
	commons.Logger.Debugf("Notification dispatched: template=%s to=%s", data.Template, data.To)
}
