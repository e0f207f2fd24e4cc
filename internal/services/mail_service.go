package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	SendPasswordResetCode(to, code string, validFor time.Duration) error
}

type SMTPConfig struct {
	Host       string
	Port       int // 587 for STARTTLS, 465 with UseSSL
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	RequireTLS bool

	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
	dial    func(addr string) (net.Conn, error)
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl, err := template.New("html").Parse(codeHTMLTemplate)
	if err != nil {
		return nil, err
	}
	textTpl, err := template.New("text").Parse(codeTextTemplate)
	if err != nil {
		return nil, err
	}
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
		dial: func(addr string) (net.Conn, error) {
			if cfg.UseSSL {
				return tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12})
			}
			return dialer.Dial("tcp", addr)
		},
	}, nil
}

type codeEmail struct {
	AppName string
	Title   string
	Intro   string
	Code    string
	Minutes int
	Link    string
	Year    int
}

func (s *smtpMailService) SendPasswordResetCode(to, code string, validFor time.Duration) error {
	subject := "Restablece tu contraseña"
	data := codeEmail{
		AppName: s.cfg.AppName,
		Title:   subject,
		Intro:   "Hemos recibido una solicitud para restablecer tu contraseña. Usa este código para continuar. Si no lo has solicitado, ignora este correo.",
		Code:    code,
		Minutes: int(validFor / time.Minute),
		Link:    strings.TrimRight(s.cfg.AppBaseURL, "/") + "/reset-password",
		Year:    time.Now().Year(),
	}

	var html, text bytes.Buffer
	if err := s.htmlTpl.Execute(&html, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&text, data); err != nil {
		return err
	}
	return s.send(to, subject, html.String(), text.String())
}

const codeHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="margin:0;padding:32px 12px;background:#f1f5f9;font-family:-apple-system,Segoe UI,Roboto,Arial,sans-serif;color:#0f172a">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:12px;overflow:hidden">
    <div style="padding:24px 28px;border-bottom:1px solid #e2e8f0;font-weight:700;color:#059669">{{.AppName}}</div>
    <div style="padding:28px">
      <h1 style="margin:0 0 16px;font-size:22px">{{.Title}}</h1>
      <p style="line-height:1.6;color:#475569">{{.Intro}}</p>
      <p style="font-size:30px;letter-spacing:8px;font-weight:700;margin:24px 0">{{.Code}}</p>
      <p style="color:#64748b;font-size:13px">El código caduca en {{.Minutes}} minutos. Introdúcelo en <a href="{{.Link}}">{{.Link}}</a>.</p>
    </div>
    <div style="padding:16px 28px;color:#94a3b8;font-size:12px;text-align:center">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const codeTextTemplate = `{{.Title}}

{{.Intro}}

Código: {{.Code}}
Caduca en {{.Minutes}} minutos: {{.Link}}

{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)
	write("--%s--\r\n", boundary)

	conn, err := s.dial(fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port))
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
