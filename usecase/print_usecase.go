package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"
	"travel-crm-service/pkg/pix"
)

// PrintUseCase renders the customer-facing quote document
type PrintUseCase interface {
	// RenderQuote produces the printable HTML document for a quote.
	// Internal cost figures never appear on it.
	RenderQuote(ctx context.Context, quoteID string) ([]byte, error)
	// BuildPixPayload produces the copy-and-paste PIX charge string for a
	// quote, using the owning company's key and the quote's value
	BuildPixPayload(ctx context.Context, quoteID string) (string, error)
}

// printUseCase implements the PrintUseCase interface
type printUseCase struct {
	quoteRepo   repository.Quote
	companyRepo repository.Company
	template    *template.Template
	logger      logger.LoggerInterface
}

// NewPrintUseCase creates a new instance of printUseCase
func NewPrintUseCase(quoteRepo repository.Quote, companyRepo repository.Company, appLogger logger.LoggerInterface) (PrintUseCase, error) {
	tmpl, err := template.New("quote").Funcs(template.FuncMap{
		"brl": func(v float64) string {
			s := fmt.Sprintf("%.2f", v)
			s = strings.ReplaceAll(s, ".", ",")
			return "R$ " + s
		},
	}).Parse(quoteDocumentTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quote template: %w", err)
	}
	return &printUseCase{
		quoteRepo:   quoteRepo,
		companyRepo: companyRepo,
		template:    tmpl,
		logger:      appLogger,
	}, nil
}

// printFlightGroup is a direction section of the document
type printFlightGroup struct {
	Label   string
	Flights []*model.Flight
}

// printData is the template context for the quote document
type printData struct {
	Quote       *model.Quote
	Company     *model.Company
	StatusLabel string
	Groups      []printFlightGroup
	Passengers  []*model.QuotePassenger
	PixPayload  string
}

// directionLabels maps leg directions to the printed section titles
var directionLabels = map[string]string{
	model.DirectionOutbound: "Voos de Ida",
	model.DirectionReturn:   "Voos de Volta",
	model.DirectionInternal: "Trechos Internos",
}

// statusLabels maps stored statuses to the printed badge text
var statusLabels = map[string]string{
	model.StatusCotar:             "Em cotação",
	model.StatusAguardandoCliente: "Aguardando cliente",
	model.StatusAprovado:          "Aprovado",
	model.StatusReprovado:         "Reprovado",
	model.StatusLancado:           "Venda confirmada",
}

// RenderQuote produces the printable HTML document for a quote
func (uc *printUseCase) RenderQuote(ctx context.Context, quoteID string) ([]byte, error) {
	uc.logger.InfoContext(ctx, "Rendering quote document", "quoteID", quoteID)
	if quoteID == "" {
		return nil, domain.ErrInvalidID
	}

	quote, err := uc.quoteRepo.GetByIDFull(ctx, quoteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("error getting quote: %w", err)
	}

	var company *model.Company
	if quote.CompanyID != nil {
		company, err = uc.companyRepo.GetByID(ctx, *quote.CompanyID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("error getting company: %w", err)
		}
	}
	if company == nil {
		// The document still renders without branding
		company = &model.Company{PrimaryColor: "#1a56db"}
	}

	data := printData{
		Quote:       quote,
		Company:     company,
		StatusLabel: statusLabels[quote.Status],
		Passengers:  make([]*model.QuotePassenger, 0, len(quote.Passengers)),
	}
	for i := range quote.Passengers {
		data.Passengers = append(data.Passengers, &quote.Passengers[i])
	}

	for _, direction := range []string{model.DirectionOutbound, model.DirectionInternal, model.DirectionReturn} {
		group := printFlightGroup{Label: directionLabels[direction]}
		for i := range quote.Flights {
			if quote.Flights[i].Direction == direction {
				group.Flights = append(group.Flights, &quote.Flights[i])
			}
		}
		if len(group.Flights) > 0 {
			data.Groups = append(data.Groups, group)
		}
	}

	if company.PixKey != "" && quote.Value > 0 {
		payload, err := uc.buildPix(quote, company)
		if err != nil {
			uc.logger.WarnContext(ctx, "Could not build PIX payload for document", "quoteID", quoteID, "error", err)
		} else {
			data.PixPayload = payload
		}
	}

	var buf bytes.Buffer
	if err := uc.template.Execute(&buf, data); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to render quote document", "quoteID", quoteID, "error", err)
		return nil, fmt.Errorf("failed to render quote document: %w", err)
	}
	return buf.Bytes(), nil
}

func (uc *printUseCase) buildPix(quote *model.Quote, company *model.Company) (string, error) {
	city := company.City
	if city == "" {
		city = "BRASIL"
	}
	payload := pix.Payload{
		Key:          company.PixKey,
		Description:  fmt.Sprintf("Cotacao %s", quote.Code),
		MerchantName: company.Name,
		MerchantCity: strings.ToUpper(city),
		Amount:       fmt.Sprintf("%.2f", quote.Value),
		TxID:         quote.Code,
	}
	return payload.Build()
}

// BuildPixPayload produces the copy-and-paste PIX charge string for a quote
func (uc *printUseCase) BuildPixPayload(ctx context.Context, quoteID string) (string, error) {
	uc.logger.InfoContext(ctx, "Building PIX payload", "quoteID", quoteID)
	if quoteID == "" {
		return "", domain.ErrInvalidID
	}

	quote, err := uc.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrQuoteNotFound
		}
		return "", fmt.Errorf("error getting quote: %w", err)
	}
	if quote.Value <= 0 {
		return "", &domain.AppError{Message: "quote has no value to charge", Code: 400}
	}
	if quote.CompanyID == nil {
		return "", &domain.AppError{Message: "quote has no company for PIX charging", Code: 400}
	}

	company, err := uc.companyRepo.GetByID(ctx, *quote.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrCompanyNotFound
		}
		return "", fmt.Errorf("error getting company: %w", err)
	}
	if company.PixKey == "" {
		return "", &domain.AppError{Message: "company has no PIX key configured", Code: 400}
	}

	return uc.buildPix(quote, company)
}

// quoteDocumentTemplate is the printable quote layout. It is intentionally
// self-contained: inline styles only, no external assets beyond the logo.
const quoteDocumentTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Cotação {{.Quote.Code}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #1f2937; margin: 0; padding: 24px; }
  .header { display: flex; justify-content: space-between; align-items: center; border-bottom: 4px solid {{.Company.PrimaryColor}}; padding-bottom: 16px; }
  .header img { max-height: 64px; }
  .badge { display: inline-block; padding: 4px 12px; border-radius: 9999px; background: {{.Company.PrimaryColor}}; color: #fff; font-size: 12px; }
  h1 { font-size: 20px; margin: 4px 0; }
  h2 { font-size: 16px; margin: 24px 0 8px; color: {{.Company.PrimaryColor}}; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #e5e7eb; }
  th { background: #f9fafb; }
  .total { font-size: 18px; font-weight: bold; text-align: right; margin-top: 16px; }
  .pix { margin-top: 16px; padding: 12px; background: #f9fafb; border: 1px dashed #9ca3af; font-family: monospace; word-break: break-all; font-size: 12px; }
  .footer { margin-top: 32px; font-size: 11px; color: #6b7280; border-top: 1px solid #e5e7eb; padding-top: 8px; }
  @media print { body { padding: 0; } }
</style>
</head>
<body>
  <div class="header">
    <div>
      {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" alt="{{.Company.Name}}">{{end}}
      <h1>{{.Company.Name}}</h1>
    </div>
    <div>
      <h1>Cotação {{.Quote.Code}}</h1>
      <span class="badge">{{.StatusLabel}}</span>
    </div>
  </div>

  <h2>Dados da viagem</h2>
  <table>
    <tr><th>Cliente</th><td>{{.Quote.ClientName}}</td></tr>
    {{if .Quote.Title}}<tr><th>Título</th><td>{{.Quote.Title}}</td></tr>{{end}}
    {{if .Quote.Destination}}<tr><th>Destino</th><td>{{.Quote.Destination}}</td></tr>{{end}}
    {{if .Quote.TravelDate}}<tr><th>Data da viagem</th><td>{{.Quote.TravelDate.Format "02/01/2006"}}</td></tr>{{end}}
  </table>

  {{range .Groups}}
  <h2>{{.Label}}</h2>
  <table>
    <tr><th>Voo</th><th>Companhia</th><th>Origem</th><th>Destino</th><th>Data</th><th>Partida</th><th>Chegada</th><th>Bagagem</th></tr>
    {{range .Flights}}
    <tr>
      <td>{{.FlightNumber}}</td>
      <td>{{.Airline}}</td>
      <td>{{.Origin}}</td>
      <td>{{.Dest}}</td>
      <td>{{with .TravelDate}}{{.Format "02/01/2006"}}{{end}}</td>
      <td>{{.DepartureTime}}</td>
      <td>{{.ArrivalTime}}</td>
      <td>{{.CheckedBags}} desp. / {{.CarryOnBags}} mão</td>
    </tr>
    {{end}}
  </table>
  {{end}}

  {{if .Passengers}}
  <h2>Passageiros</h2>
  <table>
    <tr><th>Nome</th><th>Tipo</th><th>CPF</th></tr>
    {{range .Passengers}}
    <tr><td>{{.Client.FullName}}</td><td>{{.Type}}</td><td>{{.Client.CPF}}</td></tr>
    {{end}}
  </table>
  {{end}}

  {{if gt .Quote.Value 0.0}}
  <div class="total">Valor total: {{brl .Quote.Value}}</div>
  {{end}}

  {{if .PixPayload}}
  <h2>Pagamento via PIX</h2>
  <div class="pix">{{.PixPayload}}</div>
  {{end}}

  {{if .Quote.Notes}}
  <h2>Observações</h2>
  <p>{{.Quote.Notes}}</p>
  {{end}}

  <div class="footer">
    {{.Company.Name}}{{if .Company.CNPJ}} — CNPJ {{.Company.CNPJ}}{{end}}{{if .Company.Phone}} — {{.Company.Phone}}{{end}}{{if .Company.Email}} — {{.Company.Email}}{{end}}
  </div>
</body>
</html>
`
