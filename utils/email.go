package utils

import (
	"context"
	"fmt"
	"strings"

	"catdogeats/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailService sends transactional mail through SendGrid
type EmailService struct {
	apiKey string
	sender string
	log    *zap.Logger
}

// NewEmailService creates an EmailService. An empty apiKey disables sending.
func NewEmailService(apiKey, sender string, log *zap.Logger) *EmailService {
	return &EmailService{apiKey: apiKey, sender: sender, log: log}
}

// Enabled reports whether an API key is configured
func (es *EmailService) Enabled() bool {
	return es.apiKey != "" && es.sender != ""
}

// SendEmail sends a plain text mail with a minimal HTML alternative
func (es *EmailService) SendEmail(ctx context.Context, toEmail, subject, body string) error {
	if !es.Enabled() {
		es.log.Debug("email disabled, skipping", zap.String("to", toEmail), zap.String("subject", subject))
		return nil
	}
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("to address is empty")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail("CatDogEats", es.sender),
		subject,
		mail.NewEmail("", toEmail),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(es.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	es.log.Info("mail sent", zap.Int("status", response.StatusCode), zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// SendInquiryReceived confirms to the buyer that their inquiry was registered
func (es *EmailService) SendInquiryReceived(ctx context.Context, toEmail string, inquiry models.Inquiry) error {
	subject := "[CatDogEats] 문의가 접수되었습니다"
	body := fmt.Sprintf(`고객님의 문의가 정상적으로 접수되었습니다.

  문의 제목 : %s
  접수 일시 : %s

답변이 등록되면 마이페이지 > 1:1 문의에서 확인하실 수 있습니다.

-- 
CatDogEats 고객센터`,
		inquiry.Title,
		FormatDateTime(inquiry.CreatedAt),
	)
	return es.SendEmail(ctx, toEmail, subject, body)
}
