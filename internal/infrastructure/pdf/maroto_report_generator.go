// Package pdf implementa la generación del reporte de actividades del AM.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del AM + ID Sales  │  Witel + Fecha reporte  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Akan Datang | Perlu Update | Selesai       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Hora | Actividad | Cliente | Estado          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/crm-kam-api/internal/application/usecase"
	domactivity "github.com/jhoicas/crm-kam-api/internal/domain/activity"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.ActivityReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ActivityReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateActivityReport genera el PDF y devuelve sus bytes. Las actividades
// llegan ya ordenadas; los estados se derivan aquí contra el `now` recibido,
// el mismo de toda la petición.
func (g *MarotoReportGenerator) GenerateActivityReport(
	_ context.Context,
	am *entity.User,
	activities []*entity.Activity,
	now time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Aktivitas AM", true).
		WithAuthor(am.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(am, now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(activities, now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableActivityRows(activities, now) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(now))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + id_sales (izq), witel/región + fecha del reporte (der).
func headerRow(am *entity.User, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(am.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ID Sales: "+nonEmpty(am.IDSales, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LAPORAN AKTIVITAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(am.Witel, "—")+" / "+nonEmpty(am.Region, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+now.UTC().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: contadores agregados de toda la colección.
func summaryRow(activities []*entity.Activity, now time.Time) core.Row {
	counts := domactivity.Aggregate(activities, now)
	completed := 0
	for _, a := range activities {
		if domactivity.ComputedStatus(a, now) == domactivity.StatusCompleted {
			completed++
		}
	}
	cell := func(label string, value int) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%d", value), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("Total", len(activities)),
		cell(domactivity.StatusLabels[domactivity.StatusUpcoming], counts.Upcoming),
		cell(domactivity.StatusLabels[domactivity.StatusNeedsUpdate], counts.NeedsUpdate),
		cell(domactivity.StatusLabels[domactivity.StatusCompleted], completed),
	)
}

// tableHeaderRow: cabecera de la tabla de actividades.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Hora", 1, align.Center),
		h("Actividad", 4, align.Left),
		h("Cliente", 3, align.Left),
		h("Estado", 2, align.Center),
	)
}

// tableActivityRows: una fila por actividad, con su estado derivado.
func tableActivityRows(activities []*entity.Activity, now time.Time) []core.Row {
	result := make([]core.Row, 0, len(activities))
	for _, a := range activities {
		status := domactivity.ComputedStatus(a, now)
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				nonEmpty(a.Date, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(a.Time, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				a.Title,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(a.Customer, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				domactivity.StatusLabels[status],
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow(now time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado el "+now.UTC().Format("02/01/2006 15:04")+" UTC. "+
				"Los estados se calculan a la fecha de generación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
