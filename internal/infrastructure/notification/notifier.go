package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lesson_billing/internal/config"
	"lesson_billing/internal/logger"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrSmsDisabled  = errors.New("sms delivery disabled")
	ErrMissingPhone = errors.New("missing phone number")
)

// LogNotifier publishes events to the structured log. Push and kakao
// integrations read them from there.
type LogNotifier struct {
	log zerolog.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.WithComponent("notification.events")}
}

func (n *LogNotifier) Notify(_ context.Context, event string, payload map[string]any) error {
	if strings.TrimSpace(event) == "" {
		return fmt.Errorf("notify: empty event name")
	}
	n.log.Info().Str("event", event).Fields(payload).Msg("event published")
	return nil
}

// LogSmsSender writes outgoing messages to the log instead of a carrier.
type LogSmsSender struct {
	log zerolog.Logger
}

var _ interfaces.ISmsSender = (*LogSmsSender)(nil)

func NewLogSmsSender() *LogSmsSender {
	return &LogSmsSender{log: logger.WithComponent("notification.sms")}
}

func (s *LogSmsSender) SendSms(_ context.Context, phone, message string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrMissingPhone
	}
	s.log.Info().Str("phone", maskPhone(phone)).Str("message", message).Msg("sms sent")
	return nil
}

// DisabledSmsSender rejects every message.
type DisabledSmsSender struct{}

var _ interfaces.ISmsSender = DisabledSmsSender{}

func (DisabledSmsSender) SendSms(context.Context, string, string) error {
	return ErrSmsDisabled
}

// NewSmsSender picks the sender for SMS_DRIVER.
func NewSmsSender(driver string) (interfaces.ISmsSender, error) {
	switch driver {
	case config.SmsDriverLog:
		return NewLogSmsSender(), nil
	case config.SmsDriverDisabled:
		return DisabledSmsSender{}, nil
	}
	return nil, fmt.Errorf("unknown sms driver %q", driver)
}

// maskPhone keeps the last four digits.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
