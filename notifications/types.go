// SPDX-License-Identifier: GPL-3.0-only

package notifications

type NotificationData struct {
	To        string         `json:"to"`
	Subject   string         `json:"subject"`
	Template  string         `json:"template"`
	Variables map[string]any `json:"variables,omitempty"`
}

type Provider string

const (
	Console Provider = "console"
	SMTP    Provider = "smtp"
)
