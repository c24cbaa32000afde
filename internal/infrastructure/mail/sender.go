package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ewecarreira/pedidos-api/internal/application/auth"
	"github.com/ewecarreira/pedidos-api/pkg/config"
)

var _ auth.MailSender = (*SMTPSender)(nil)

// SMTPSender envía los correos transaccionales del servicio vía SMTP.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender construye el sender con la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendNewPassword envía la contraseña generada por el flujo de recuperación.
func (s *SMTPSender) SendNewPassword(to, name, newPassword string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Solicitud de nueva contraseña")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\nTu nueva contraseña es: %s\n\nCámbiala después de iniciar sesión.\n", name, newPassword))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo SMTP: %w", err)
	}
	return nil
}
