package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/inventario-admin/internal/application/ports"
	"github.com/jhoicas/inventario-admin/pkg/config"
)

// Asegura que SMTPMailer implementa ports.Mailer.
var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía el reporte a través de un servidor SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el transporte SMTP con la configuración dada.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.From,
	}
}

// SendReport envía el PDF adjunto al destinatario. El intento es único,
// sin reintentos: el fallo se reporta al llamador.
func (m *SMTPMailer) SendReport(_ context.Context, to string, pdf []byte, filename string) error {
	msg := buildReportMessage(m.from, to, pdf, filename)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo SMTP: %w", err)
	}
	return nil
}
