package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"ecolithswap-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendRentalReceipt(ctx context.Context, email, name string, rental *domain.Rental) error {
	cost := float64(0)
	if rental.TotalCost != nil {
		cost = *rental.TotalCost
	}
	subject := fmt.Sprintf("EcolithSwap receipt for rental #%d", rental.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour battery rental #%d is complete.\n\nTotal charge: KES %.2f\n\nThank you for riding clean.\nThe EcolithSwap Team",
		name, rental.ID, cost)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendWasteVerifiedNotification(ctx context.Context, email, name string, log *domain.WasteLog) error {
	subject := "Your recycling submission was verified"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour %.2f kg %s submission was verified and %d points were added to your account.\n\nThe EcolithSwap Team",
		name, log.WeightKg, log.WasteType, log.PointsEarned)
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
