package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	orderUsecases "github.com/stealthycommerce/stealthy/internal/application/order/usecases"
	"github.com/stealthycommerce/stealthy/internal/shared/config"
	"github.com/stealthycommerce/stealthy/internal/shared/services/markdown"
)

const receiptDateLayout = "2006-01-02"

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPConfigFrom converts the email config section.
func SMTPConfigFrom(cfg config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

// SMTPReceiptNotifier sends order and cancellation receipts over SMTP.
type SMTPReceiptNotifier struct {
	config   SMTPConfig
	renderer markdown.Renderer
	send     func(m *gomail.Message) error
}

func NewSMTPReceiptNotifier(smtpCfg SMTPConfig, renderer markdown.Renderer) *SMTPReceiptNotifier {
	dialer := gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.Username, smtpCfg.Password)

	return &SMTPReceiptNotifier{
		config:   smtpCfg,
		renderer: renderer,
		send:     func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

// NewReceiptNotifierWithSender builds a notifier that hands messages to sender.
func NewReceiptNotifierWithSender(smtpCfg SMTPConfig, renderer markdown.Renderer, sender gomail.Sender) *SMTPReceiptNotifier {
	return &SMTPReceiptNotifier{
		config:   smtpCfg,
		renderer: renderer,
		send:     func(m *gomail.Message) error { return gomail.Send(sender, m) },
	}
}

type receiptLineView struct {
	OrderID     uint
	Product     string
	Description template.HTML
	PlainDesc   string
	Amount      string
	Start       string
	End         string
}

var orderReceiptHTML = template.Must(template.New("order").Parse(`<html>
<body>
<h2>Thanks for your order, {{.Name}}</h2>
<table>
<tr><th>Order</th><th>Product</th><th>Details</th><th>Period</th><th>Amount</th></tr>
{{range .Lines}}<tr><td>#{{.OrderID}}</td><td>{{.Product}}</td><td>{{.Description}}</td><td>{{.Start}} to {{.End}}</td><td>{{.Amount}}</td></tr>
{{end}}</table>
<p>Total charged: {{.Total}}</p>
</body>
</html>`))

var cancellationReceiptHTML = template.Must(template.New("cancel").Parse(`<html>
<body>
<h2>Order #{{.OrderID}} cancelled</h2>
<p>Hello {{.Name}}, your order was cancelled on {{.Date}}.</p>
<p>Amount charged: {{.Charged}}<br>Amount refunded: {{.Refunded}}</p>
</body>
</html>`))

func (s *SMTPReceiptNotifier) SendOrderReceipt(_ context.Context, receipt orderUsecases.OrderReceipt) error {
	lines := make([]receiptLineView, 0, len(receipt.Lines))
	var plain bytes.Buffer
	fmt.Fprintf(&plain, "Thanks for your order, %s\n\n", receipt.Name)

	for _, l := range receipt.Lines {
		html, err := s.renderer.ToHTML(l.Description)
		if err != nil {
			return fmt.Errorf("failed to render description: %w", err)
		}
		text, err := s.renderer.ToPlainText(l.Description)
		if err != nil {
			return fmt.Errorf("failed to render description: %w", err)
		}

		product := l.ProductName
		if l.Brand != "" {
			product = l.Brand + " " + l.ProductName
		}
		view := receiptLineView{
			OrderID:     l.OrderID,
			Product:     product,
			Description: template.HTML(html), // sanitized by the renderer
			PlainDesc:   text,
			Amount:      l.Amount.StringFixed(2),
			Start:       l.StartDate.Format(receiptDateLayout),
			End:         l.EndDate.Format(receiptDateLayout),
		}
		lines = append(lines, view)
		fmt.Fprintf(&plain, "#%d %s (%s) %s to %s: %s\n",
			view.OrderID, view.Product, view.PlainDesc, view.Start, view.End, view.Amount)
	}

	total := receipt.Total().StringFixed(2)
	fmt.Fprintf(&plain, "\nTotal charged: %s\n", total)

	var html bytes.Buffer
	if err := orderReceiptHTML.Execute(&html, map[string]any{
		"Name":  receipt.Name,
		"Lines": lines,
		"Total": total,
	}); err != nil {
		return fmt.Errorf("failed to render order receipt: %w", err)
	}

	return s.sendEmail(receipt.Email, receipt.Name, "Your order receipt", html.String(), plain.String())
}

func (s *SMTPReceiptNotifier) SendCancellationReceipt(_ context.Context, receipt orderUsecases.CancellationReceipt) error {
	data := map[string]any{
		"OrderID":  receipt.OrderID,
		"Name":     receipt.Name,
		"Date":     receipt.CancelledAt.Format(receiptDateLayout),
		"Charged":  receipt.AmountCharged.StringFixed(2),
		"Refunded": receipt.AmountRefunded.StringFixed(2),
	}

	var html bytes.Buffer
	if err := cancellationReceiptHTML.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to render cancellation receipt: %w", err)
	}

	plain := fmt.Sprintf("Order #%d cancelled\n\nHello %s, your order was cancelled on %s.\nAmount charged: %s\nAmount refunded: %s\n",
		receipt.OrderID, receipt.Name, data["Date"], data["Charged"], data["Refunded"])

	subject := fmt.Sprintf("Order #%d cancelled", receipt.OrderID)
	return s.sendEmail(receipt.Email, receipt.Name, subject, html.String(), plain)
}

func (s *SMTPReceiptNotifier) sendEmail(to, toName, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetAddressHeader("To", to, toName)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
