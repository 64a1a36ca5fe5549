package mail

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/jhoicas/inventario-admin/internal/application/ports"
	"github.com/jhoicas/inventario-admin/pkg/config"
)

// Asegura que SESMailer implementa ports.Mailer.
var _ ports.Mailer = (*SESMailer)(nil)

// SESMailer envía el reporte como mensaje MIME crudo vía Amazon SES v2.
// El mensaje se construye con gomail y se entrega completo a SES para
// conservar el adjunto PDF.
type SESMailer struct {
	client *sesv2.Client
	from   string
}

// NewSESMailer construye el transporte SES cargando la configuración AWS
// del entorno (credenciales, región).
func NewSESMailer(ctx context.Context, cfg config.MailConfig) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SESRegion))
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	return &SESMailer{
		client: sesv2.NewFromConfig(awsCfg),
		from:   cfg.From,
	}, nil
}

// SendReport envía el PDF adjunto al destinatario en un único intento.
func (m *SESMailer) SendReport(ctx context.Context, to string, pdf []byte, filename string) error {
	msg := buildReportMessage(m.from, to, pdf, filename)
	raw, err := rawMIME(msg)
	if err != nil {
		return err
	}

	_, err = m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &m.from,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("enviar correo SES: %w", err)
	}
	return nil
}
