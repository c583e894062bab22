// Package pdf renders the printable tax document with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Issuer name + Tax ID  │  Document no. + Date        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ISSUER: Address / Phone / Email                             │
//	│  CUSTOMER: Name + reference                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | Unit price | VAT | Line total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Net / VAT / TOTAL DUE                               │
//	│  FOOTER: status, payment method, due date, issuer website    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appprint "github.com/alonilk2/accounting-sub001/internal/application/print"
	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
)

const dateLayout = "02/01/2006"

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 78, Blue: 139}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ appprint.Renderer = (*MarotoRenderer)(nil)

// MarotoRenderer implements print.Renderer using Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer constructs the renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render produces the PDF bytes of one assembled print view.
func (r *MarotoRenderer) Render(_ context.Context, view *appprint.View) ([]byte, error) {
	doc := view.Document
	issuer := view.Issuer

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+doc.Number, true).
		WithAuthor(issuer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(issuerRow(issuer))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, l := range doc.Lines {
		m.AddRows(lineRow(l, issuer.Currency))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(doc, issuer.Currency)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc, issuer))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: issuer name + tax id (left), document number + date (right).
func headerRow(doc *entity.PrintableDocument, issuer *entity.IssuerProfile) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(issuer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tax ID: "+issuer.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE / RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("No. "+doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+doc.Date.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// issuerRow: issuer contact block.
func issuerRow(issuer *entity.IssuerProfile) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ISSUED BY", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Address: %s   |   Phone: %s   |   Email: %s",
				nonEmpty(issuer.Address, "—"),
				nonEmpty(issuer.Phone, "—"),
				nonEmpty(issuer.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// customerRow: billed party.
func customerRow(doc *entity.PrintableDocument) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Customer ref: %s",
				nonEmpty(doc.CustomerName, "—"),
				nonEmpty(doc.CustomerID, "—"),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(width int, label string, a align.Type) core.Col {
		return col.New(width).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(1, "Qty", align.Left),
		header(5, "Description", align.Left),
		header(2, "Unit price", align.Right),
		header(2, "VAT %", align.Right),
		header(2, "Total", align.Right),
	)
}

func lineRow(l entity.DocumentLine, currency string) core.Row {
	cell := func(width int, value string, a align.Type) core.Col {
		return col.New(width).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(1, l.Quantity.String(), align.Left),
		cell(5, l.Description, align.Left),
		cell(2, formatAmount(l.UnitPrice, currency), align.Right),
		cell(2, l.TaxRate.StringFixed(0)+"%", align.Right),
		cell(2, formatAmount(l.Total, currency), align.Right),
	)
}

func totalsRows(doc *entity.PrintableDocument, currency string) []core.Row {
	totalRow := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 11
		}
		return row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(label, props.Text{
				Style: style, Size: size, Align: align.Right, Top: 1,
			})),
			col.New(2).Add(text.New(value, props.Text{
				Style: style, Size: size, Align: align.Right, Top: 1,
			})),
		)
	}
	return []core.Row{
		totalRow("Net", formatAmount(doc.NetTotal, currency), false),
		totalRow("VAT", formatAmount(doc.TaxTotal, currency), false),
		totalRow("TOTAL DUE", formatAmount(doc.GrandTotal, currency), true),
	}
}

// footerRow: status, payment method, optional due date and issuer website.
func footerRow(doc *entity.PrintableDocument, issuer *entity.IssuerProfile) core.Row {
	meta := fmt.Sprintf("Status: %s   |   Payment: %s", doc.Status, doc.PaymentMethod)
	if doc.DueDate != nil {
		meta += "   |   Due: " + doc.DueDate.Format(dateLayout)
	}
	if issuer.Website != "" {
		meta += "   |   " + issuer.Website
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(meta, props.Text{Size: 7, Color: colorGray, Top: 2}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func formatAmount(d decimal.Decimal, currency string) string {
	return currency + " " + d.StringFixed(2)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
