package email

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// SMTPConfig - настройки SMTP провайдера
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// GomailProvider реализует Provider поверх gomail
type GomailProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewGomailProvider(config *SMTPConfig) *GomailProvider {
	return &GomailProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// Send отправляет email сообщение
func (p *GomailProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	from := email.From
	if from == "" {
		from = p.config.From
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`
<h2>Ваш заказ {{.OrderID}} оформлен</h2>
<p>Здравствуйте, {{.UserName}}!</p>
<p>Аренда с {{.StartDate.Format "02.01.2006"}} по {{.EndDate.Format "02.01.2006"}} ({{.Days}} дн.)</p>
<table>
{{range .Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}} шт.</td><td>{{printf "%.2f" .UnitPrice}}</td></tr>
{{end}}</table>
<p><b>Итого: {{printf "%.2f" .Amount}}</b></p>
`))

// SendOrderConfirmation отправляет подтверждение заказа
func (p *GomailProvider) SendOrderConfirmation(to string, data OrderConfirmationData) error {
	var buf bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render order confirmation: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("Заказ %s оформлен", data.OrderID),
		HTMLBody: buf.String(),
	})
}

// Validate проверяет конфигурацию SMTP
func (p *GomailProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	return nil
}

// Close закрывает соединение (gomail открывает его на каждую отправку)
func (p *GomailProvider) Close() error {
	return nil
}

// NoopProvider используется, когда SMTP не сконфигурирован
type NoopProvider struct{}

func (NoopProvider) Send(email *Email) error { return nil }
func (NoopProvider) SendOrderConfirmation(to string, data OrderConfirmationData) error {
	return nil
}
func (NoopProvider) Validate() error { return nil }
func (NoopProvider) Close() error    { return nil }
