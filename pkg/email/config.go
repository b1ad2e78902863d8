package email

import "time"

// Config holds email service configuration.
//
// The Postmark tokens are optional so development environments can run with
// the file-based sender. SenderEmail establishes the sending identity for all
// outbound mail; AdminEmail is the fixed administrative recipient that gets a
// copy of every submission.
type Config struct {
	PostmarkServerToken  string        `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string        `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string        `env:"SENDER_EMAIL,required"`
	AdminEmail           string        `env:"ADMIN_EMAIL,required"`
	SendTimeout          time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"15s"`
	SendRetryAttempts    int           `env:"EMAIL_SEND_RETRY_ATTEMPTS" envDefault:"0"`
}
