// Package pdf renders the printable challan notice handed to the violator.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Department letterhead  │  Challan No. + Issue date │
//	│  ───────────────────────────────────────────────────────── │
//	│  VIOLATOR: driver name + vehicle number                     │
//	│  JURISDICTION: state / RTO / area / district                │
//	│  ───────────────────────────────────────────────────────── │
//	│  FINE: amount + status + disposal date                      │
//	│  ───────────────────────────────────────────────────────── │
//	│  FOOTER: QR with the challan number + legal note            │
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
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/devyansh/etransport-api/internal/application/usecase"
	"github.com/devyansh/etransport-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ChallanPDFGenerator = (*MarotoNoticeGenerator)(nil)

// MarotoNoticeGenerator implements usecase.ChallanPDFGenerator with Maroto v2.
type MarotoNoticeGenerator struct{}

// NewMarotoNoticeGenerator builds the generator.
func NewMarotoNoticeGenerator() *MarotoNoticeGenerator { return &MarotoNoticeGenerator{} }

// GenerateNoticePDF renders the notice and returns its bytes.
func (g *MarotoNoticeGenerator) GenerateNoticePDF(
	_ context.Context,
	challan *entity.Challan,
	issuer *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Traffic Challan Notice", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(challan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(violatorRow(challan))
	m.AddRows(jurisdictionRow(challan, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(fineRow(challan))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(challan) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: department letterhead (left), challan number + issue date (right).
func headerRow(challan *entity.Challan) core.Row {
	issued := challan.IssueDate.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("E-TRANSPORT DEPARTMENT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(challan.Department, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TRAFFIC CHALLAN NOTICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(challan.ChallanNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Issued: "+issued, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// violatorRow: driver and vehicle details.
func violatorRow(challan *entity.Challan) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("VIOLATOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(challan.DriverName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Vehicle: %s   |   Source: %s",
				challan.VehicleNumber, challan.ChallanSource,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// jurisdictionRow: administrative locator of the violation.
func jurisdictionRow(challan *entity.Challan, issuer *entity.User) core.Row {
	issuedBy := "—"
	if issuer != nil {
		issuedBy = issuer.Username
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("JURISDICTION", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("State: %s   |   RTO: %s   |   Area: %s   |   District: %s   |   Issued by: %s",
				challan.StateCode, challan.RTOID, challan.AreaID, challan.DistrictID, issuedBy,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// fineRow: amount due and lifecycle state.
func fineRow(challan *entity.Challan) core.Row {
	statusLine := "Status: " + string(challan.Status)
	if challan.DisposalDate != nil {
		statusLine += "   |   Disposed on: " + challan.DisposalDate.Format("02/01/2006")
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New("FINE AMOUNT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(statusLine, props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("₹ "+challan.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right,
				Color: colorPrimary, Top: 4,
			}),
		),
	)
}

// footerRows: QR carrying the challan number plus the legal note.
func footerRows(challan *entity.Challan) []core.Row {
	return []core.Row{
		row.New(40).Add(
			col.New(4).Add(code.NewQr(challan.ChallanNumber, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Scan the QR code to look up this\nchallan on the e-transport portal.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Pay the fine or contest the challan\nat your Regional Transport Office.", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 18,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"This notice was generated electronically by the E-Transport Department "+
					"and is valid without signature. Keep this document until the challan is disposed.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}
