// internal/services/notification_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/models"
)

// Notifier delivers sales notifications. Implementations may block; callers
// run them off the request path.
type Notifier interface {
	NotifyInquiry(ctx context.Context, inquiry *models.Inquiry, products []models.Product) error
	NotifySampleOrder(ctx context.Context, order *models.SampleOrder) error
}

type NotificationService struct {
	config *config.Config
	send   func(to, subject, body string) error
}

type EmailTemplate struct {
	Subject string
	Body    string
}

var _ Notifier = (*NotificationService)(nil)

func NewNotificationService(config *config.Config) *NotificationService {
	s := &NotificationService{config: config}
	s.send = s.sendEmail
	return s
}

func (s *NotificationService) NotifyInquiry(ctx context.Context, inquiry *models.Inquiry, products []models.Product) error {
	templateType := "inquiry"
	if inquiry.Kind == models.InquiryKindMeeting {
		templateType = "meeting"
	}
	tmpl := s.getEmailTemplate(templateType)

	data := map[string]interface{}{
		"Inquiry":  inquiry,
		"Products": products,
		"AdminURL": fmt.Sprintf("%s/admin/inquiries/%s", s.config.Frontend.BaseURL, inquiry.ID),
	}

	subject := fmt.Sprintf(tmpl.Subject, inquiry.Name)
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.send(s.config.Email.SalesEmail, subject, body)
}

func (s *NotificationService) NotifySampleOrder(ctx context.Context, order *models.SampleOrder) error {
	tmpl := s.getEmailTemplate("sample_order")

	data := map[string]interface{}{
		"Order":    order,
		"AdminURL": fmt.Sprintf("%s/admin/sample-orders/%s", s.config.Frontend.BaseURL, order.ID),
	}

	subject := fmt.Sprintf(tmpl.Subject, order.OrderNumber)
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.send(s.config.Email.SalesEmail, subject, body)
}

// Helper methods
func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("Email not configured, skipping send")
		return nil
	}

	// Setup authentication
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	// Compose message
	from := fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", from, to, subject, body))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"inquiry": {
			Subject: "New wholesale inquiry from %s",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>New inquiry</h2>
	<p><strong>{{.Inquiry.Name}}</strong> &lt;{{.Inquiry.Email}}&gt;{{if .Inquiry.Company}} from {{.Inquiry.Company}}{{end}}</p>
	{{if .Inquiry.Phone}}<p>Phone: {{.Inquiry.Phone}}</p>{{end}}
	<p>{{.Inquiry.Message}}</p>
	{{if .Products}}<ul>{{range .Products}}<li>{{.Name}} ({{.SKU}})</li>{{end}}</ul>{{end}}
	<a href="{{.AdminURL}}">Open in admin</a>
</body>
</html>`,
		},
		"meeting": {
			Subject: "Meeting request from %s",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Meeting request</h2>
	<p><strong>{{.Inquiry.Name}}</strong> &lt;{{.Inquiry.Email}}&gt;{{if .Inquiry.Company}} from {{.Inquiry.Company}}{{end}}</p>
	{{if .Inquiry.PreferredTime}}<p>Preferred time: {{.Inquiry.PreferredTime.UTC.Format "2006-01-02 15:04 MST"}}</p>{{end}}
	<p>Call link: <a href="{{.Inquiry.MeetLink}}">{{.Inquiry.MeetLink}}</a></p>
	<p>{{.Inquiry.Message}}</p>
	<a href="{{.AdminURL}}">Open in admin</a>
</body>
</html>`,
		},
		"sample_order": {
			Subject: "Sample order %s",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Sample order {{.Order.OrderNumber}}</h2>
	<p>{{.Order.ContactName}} &lt;{{.Order.Email}}&gt;</p>
	<ul>{{range .Order.Items}}<li>{{.Quantity}} x {{.Name}}</li>{{end}}</ul>
	<p>Total: {{printf "%.2f" .Order.Total}} {{.Order.Currency}} ({{.Order.Status}})</p>
	<a href="{{.AdminURL}}">Open in admin</a>
</body>
</html>`,
		},
	}

	if template, exists := templates[templateType]; exists {
		return template
	}

	// Default template
	return EmailTemplate{
		Subject: "Notification %s",
		Body:    "<p>{{.}}</p>",
	}
}
