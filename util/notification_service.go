// util/notification_service.go

package util

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/twilio/twilio-go"
	twilio_api "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/metrics"
	"github.com/dev-mohitbeniwal/mobility/model"
	helper_util "github.com/dev-mohitbeniwal/mobility/util/helper"
)

// SMSSender delivers a single text message to an E.164 number.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioSender sends through the Twilio messages API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	params := &twilio_api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		logger.Debug("SMS accepted", zap.String("sid", *resp.Sid))
	}
	return nil
}

type NotificationService struct {
	sender         SMSSender
	breaker        *gobreaker.CircuitBreaker[struct{}]
	alertRecipient string
}

// NewNotificationService returns a service that only logs when sender is nil.
func NewNotificationService(sender SMSSender, alertRecipient string) *NotificationService {
	return &NotificationService{
		sender:         sender,
		breaker:        metrics.NewCircuitBreaker[struct{}]("sms", 30*time.Second),
		alertRecipient: alertRecipient,
	}
}

func (n *NotificationService) SendSMS(ctx context.Context, to, body string) error {
	recipient := helper_util.NormalizePhoneNumber(to)
	if recipient == "" {
		return fmt.Errorf("%w: empty recipient", mobility_errors.ErrNotificationError)
	}
	if n.sender == nil {
		logger.Info("SMS delivery disabled, dropping message", zap.Int("length", len(body)))
		metrics.SMSDeliveries.WithLabelValues("disabled").Inc()
		return nil
	}

	_, err := n.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, n.sender.Send(ctx, recipient, body)
	})
	if err != nil {
		outcome := "failed"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "circuit_open"
		}
		metrics.SMSDeliveries.WithLabelValues(outcome).Inc()
		logger.Error("Failed to send SMS", zap.Error(err))
		return fmt.Errorf("%w: %v", mobility_errors.ErrNotificationError, err)
	}

	metrics.SMSDeliveries.WithLabelValues("sent").Inc()
	return nil
}

// NotifySelfCheckAnomalies alerts the operator about a self-check that
// reported symptoms.
func (n *NotificationService) NotifySelfCheckAnomalies(ctx context.Context, vehicle *model.Vehicle, owner *model.User, anomalies []string) error {
	if len(anomalies) == 0 {
		return nil
	}
	if n.alertRecipient == "" {
		logger.Warn("No alert recipient configured for self-check anomalies",
			zap.String("vehicleId", vehicle.VehicleID))
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "[Self-check alert] vehicle %s", vehicle.VehicleID)
	if owner.Name != "" {
		fmt.Fprintf(&body, " (%s", owner.Name)
		if owner.PhoneNumber != "" {
			fmt.Fprintf(&body, ", %s", owner.PhoneNumber)
		}
		body.WriteString(")")
	}
	body.WriteString(" reported: ")
	body.WriteString(strings.Join(anomalies, ", "))

	return n.SendSMS(ctx, n.alertRecipient, body.String())
}
