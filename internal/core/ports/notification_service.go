package ports

import "context"

// Message is a rendered outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer dispatches a message and returns its message id. Fire-and-forget:
// a failure is reported once, never retried.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// DemoRequest is a demonstration request from the public landing form.
type DemoRequest struct {
	Name  string
	Email string
	Phone string
}

// NotificationService renders and dispatches templated notifications.
type NotificationService interface {
	SendDemoRequest(ctx context.Context, req DemoRequest) (string, error)
}
