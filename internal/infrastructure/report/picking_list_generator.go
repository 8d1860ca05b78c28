// Package report implementa la generación de la lista de recogida en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Lista kompletacji + fecha de generación             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada pedido:                                            │
//	│    Zamówienie #ID                                            │
//	│    TABLA: Lp | Karta | Szt. | Lokalizacja                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de líneas                                     │
//	└─────────────────────────────────────────────────────────────┘
package report

import (
	"fmt"
	"time"

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

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// PickingListGenerator implementa ports.PickingListGenerator usando Maroto v2.
type PickingListGenerator struct {
	now func() time.Time
}

// NewPickingListGenerator construye el generador.
func NewPickingListGenerator() *PickingListGenerator {
	return &PickingListGenerator{now: time.Now}
}

var _ ports.PickingListGenerator = (*PickingListGenerator)(nil)

// GeneratePickingList genera el PDF y devuelve sus bytes.
func (g *PickingListGenerator) GeneratePickingList(orders []dto.OrderAssignmentResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista kompletacji", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	totalLines := 0
	for _, order := range orders {
		m.AddRows(orderTitleRow(order.OrderID))
		m.AddRows(tableHeaderRow())
		for _, r := range tableItemRows(order.Items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
		totalLines += len(order.Items)
	}

	m.AddRows(footerRow(len(orders), totalLines))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("report: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha de generación.
func headerRow(now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("LISTA KOMPLETACJI", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Wygenerowano: "+now.Format("02.01.2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// orderTitleRow: cabecera de un pedido.
func orderTitleRow(orderID string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New("Zamówienie #"+orderID, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Lp.", 1, align.Center),
		h("Karta", 6, align.Left),
		h("Szt.", 1, align.Center),
		h("Lokalizacja", 4, align.Left),
	)
}

// tableItemRows: una fila por línea del pedido. Las líneas sin ubicación se
// marcan para que el operario las resuelva a mano.
func tableItemRows(items []dto.OrderItemResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, item := range items {
		location := item.WarehouseCode
		locStyle := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Left, Top: 1, Left: 1}
		if location == "" {
			location = "— BRAK —"
			locStyle.Style = fontstyle.Normal
			locStyle.Color = colorGray
		}
		name := item.Name
		if name == "" {
			name = item.ProductCode
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantity),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(location, locStyle)),
		))
	}
	return result
}

// footerRow: resumen final.
func footerRow(orders, lines int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(
				fmt.Sprintf("Zamówienia: %d   |   Pozycje: %d", orders, lines),
				props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Right},
			),
		),
	)
}
