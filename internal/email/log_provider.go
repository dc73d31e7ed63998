package email

import (
	"jobboard_backend/internal/logger"
)

// LogProvider logs messages instead of delivering them. Used when email is
// disabled in the config and as a stand-in for tests.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("Email delivery skipped (provider disabled)",
		"to", email.To, "subject", email.Subject)
	return nil
}
