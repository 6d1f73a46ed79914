// internal/pkg/ticket/service.go
package ticket

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
)

// Service renders printable order tickets for the kitchen / counter
type Service struct{}

// NewService creates a new ticket service
func NewService() *Service {
	return &Service{}
}

// TicketData represents the data passed to the ticket template
type TicketData struct {
	BusinessName string
	AddressText  string
	PrintedAt    string
	Message      string
}

// GenerateTicket renders the composed order message into a PDF ticket.
// The message is taken verbatim from the composer so the printed ticket
// and the chat handoff can never disagree.
func (s *Service) GenerateTicket(message string, cfg storefront.Config) (*bytes.Buffer, error) {
	data := TicketData{
		BusinessName: cfg.BusinessName,
		AddressText:  cfg.AddressText,
		PrintedAt:    time.Now().Format("02/01/2006 15:04"),
		Message:      message,
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(true)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.Zoom.Set(1.0)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data TicketData) (string, error) {
	tmpl := template.Must(template.New("ticket").Parse(ticketTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

const ticketTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: "Courier New", monospace; font-size: 12px; margin: 24px; }
  .header { text-align: center; margin-bottom: 12px; }
  .header h1 { font-size: 16px; margin: 0; text-transform: uppercase; }
  .header p { margin: 2px 0; }
  .message { white-space: pre-wrap; border-top: 1px dashed #000; padding-top: 8px; }
</style>
</head>
<body>
  <div class="header">
    <h1>{{.BusinessName}}</h1>
    {{if .AddressText}}<p>{{.AddressText}}</p>{{end}}
    <p>Impreso: {{.PrintedAt}}</p>
  </div>
  <div class="message">{{.Message}}</div>
</body>
</html>`
