// Package pdf implementa la generación de la lista de prelievo (picking list)
// que el magazziniere lleva consigo durante el recorrido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Wave + Estado  │  Fecha + Operador              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Seq | Ubicación | SKU | Producto | Cant. richiesta  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: barcode de la wave + firma del operador            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/barcode"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jpcastillo/warehouse-api/internal/application/picking"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ picking.DocumentGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa picking.DocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePickingDocument genera el PDF de la lista de prelievo y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePickingDocument(
	_ context.Context,
	wave *entity.PickingWave,
	lines []picking.DocumentLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista di Prelievo "+wave.WaveNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(wave))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(wave) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: N° wave + estado (izq) y fecha + operador (der).
func headerRow(wave *entity.PickingWave) core.Row {
	fecha := wave.CreatedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("LISTA DI PRELIEVO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(wave.WaveNumber, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
			text.New("Stato: "+wave.Status, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Data: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Operatore: "+nonEmpty(wave.AssignedUserID, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Priorità: %d", wave.Priority), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Seq.", 1, align.Center),
		h("Ubicazione", 3, align.Left),
		h("SKU", 2, align.Left),
		h("Prodotto", 4, align.Left),
		h("Qta", 2, align.Right),
	)
}

// tableLineRows: una fila por tarea, en orden de recorrido.
func tableLineRows(lines []picking.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Sequence),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(l.LocationBarcode, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.ProductSKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Requested),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRows: barcode de la wave para el scanner + espacio de firma.
func footerRows(wave *entity.PickingWave) []core.Row {
	return []core.Row{
		row.New(20).Add(
			col.New(5).Add(code.NewBar(wave.WaveNumber, props.Barcode{
				Type:    barcode.Code128,
				Percent: 80,
				Center:  true,
			})),
			col.New(7).Add(
				text.New("Firma operatore: ____________________", props.Text{
					Size: 9, Top: 8, Left: 3, Color: colorGray,
				}),
			),
		),
		row.New(6).Add(col.New(12).Add(
			text.New("Confermare ogni prelievo dall'app per aggiornare l'inventario per ubicazione.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
