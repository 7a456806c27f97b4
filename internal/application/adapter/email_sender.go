// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import "context"

// SendEmailInput holds the data needed to send a single email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider response for a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails through a provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
