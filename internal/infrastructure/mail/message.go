// Package mail implementa el envío del reporte de inventario por correo.
// Ofrece dos transportes intercambiables: SMTP directo y Amazon SES.
package mail

import (
	"bytes"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"
)

const reportSubject = "📄 Archivo PDF de productos"

// buildReportMessage arma el mensaje MIME con el PDF adjunto.
// El mismo mensaje sirve para ambos transportes.
func buildReportMessage(from, to string, pdf []byte, filename string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", reportSubject)
	msg.SetBody("text/plain",
		"Adjunto encontrarás el archivo PDF con la información de productos y empresas.")
	msg.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)
	return msg
}

// rawMIME serializa el mensaje completo para transportes que exigen MIME crudo.
func rawMIME(msg *gomail.Message) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serializar mensaje MIME: %w", err)
	}
	return buf.Bytes(), nil
}
