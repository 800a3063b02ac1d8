package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeEmail builds the job enqueued after a successful registration.
func WelcomeEmail(to, name, appName string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to " + appName,
		Text:    "Hi " + name + ",\n\nYour account has been created. You can sign in with your e-mail and password.",
		HTML:    "<p>Hi " + name + ",</p><p>Your account has been created. You can sign in with your e-mail and password.</p>",
	}
}
