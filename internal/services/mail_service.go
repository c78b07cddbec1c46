package services

import (
	"bytes"
	"crypto/tls"
	"evcharge/internal/models/response_models"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"
)

type IMailService interface {
	SendInvoiceEmail(to string, invoice response_models.Invoice) error
	SendVerificationCode(to, code string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool // if true, fail if STARTTLS not available

	AppName string
}

type smtpMailService struct {
	cfg        SMTPConfig
	invoiceTpl *template.Template
	codeTpl    *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:        cfg,
		invoiceTpl: template.Must(template.New("invoiceHTML").Parse(invoiceHTMLTemplate)),
		codeTpl:    template.Must(template.New("codeHTML").Parse(codeHTMLTemplate)),
	}, nil
}

func (s *smtpMailService) SendInvoiceEmail(to string, invoice response_models.Invoice) error {
	subject := fmt.Sprintf("Your charging invoice - transaction %s", invoice.TransactionID)

	var body bytes.Buffer
	if err := s.invoiceTpl.Execute(&body, struct {
		response_models.Invoice
		AppName string
		Year    int
	}{invoice, s.cfg.AppName, time.Now().Year()}); err != nil {
		return err
	}
	return s.send(to, subject, body.String())
}

func (s *smtpMailService) SendVerificationCode(to, code string) error {
	subject := "Your verification code"

	var body bytes.Buffer
	if err := s.codeTpl.Execute(&body, struct {
		Code    string
		AppName string
		Year    int
	}{code, s.cfg.AppName, time.Now().Year()}); err != nil {
		return err
	}
	return s.send(to, subject, body.String())
}

const invoiceHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>Charging invoice</title></head>
<body style="font-family:Arial,sans-serif;color:#1e293b">
  <h2>{{.AppName}} - charging invoice</h2>
  <p>Hi {{.UserName}}, thanks for charging with us. Payment for session {{.SessionID}} is complete.</p>
  <table cellpadding="6" style="border-collapse:collapse">
    <tr><td>Station</td><td>{{.StationName}}, {{.StationAddress}}</td></tr>
    <tr><td>Period</td><td>{{.StartTime}} - {{.EndTime}}</td></tr>
    <tr><td>Power consumed</td><td>{{.PowerConsumed}} kWh</td></tr>
    <tr><td>Base price</td><td>{{.BasePrice}} VND/kWh</td></tr>
    <tr><td>Price factor</td><td>{{.PriceFactor}}</td></tr>
    <tr><td>Subscription discount</td><td>{{.SubscriptionDiscount}}</td></tr>
    <tr><td>Subtotal</td><td>{{.Subtotal}} VND</td></tr>
    {{range .Fees}}<tr><td>Fee ({{.Type}})</td><td>{{.Amount}} VND</td></tr>{{end}}
    <tr><td><b>Total</b></td><td><b>{{.TotalAmount}} VND</b></td></tr>
    <tr><td>Payment method</td><td>{{.PaymentMethod}}</td></tr>
    <tr><td>Payment date</td><td>{{.PaymentDate}}</td></tr>
  </table>
  <p style="color:#64748b">© {{.Year}} {{.AppName}}. All rights reserved.</p>
</body>
</html>`

const codeHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>Verification code</title></head>
<body style="font-family:Arial,sans-serif;color:#1e293b">
  <h2>{{.AppName}}</h2>
  <p>Your verification code is:</p>
  <p style="font-size:28px;letter-spacing:6px"><b>{{.Code}}</b></p>
  <p>The code expires in 10 minutes. If you did not request this, you can ignore this email.</p>
  <p style="color:#64748b">© {{.Year}} {{.AppName}}. All rights reserved.</p>
</body>
</html>`

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("\r\n%s\r\n", htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.deliver(c, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.deliver(c, to, msg.Bytes())

}

func (s *smtpMailService) deliver(c *smtp.Client, to string, msg []byte) error {
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
