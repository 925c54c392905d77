package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/pkg/errors"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
	saleRed    = color.Color{Red: 178, Green: 34, Blue: 34}
)

// GenerateLineSheetPDF renders the catalog as a printable line sheet, one
// section per department, in catalog order within each section.
func GenerateLineSheetPDF(products []models.Product, generatedAt time.Time) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(15, 15, 15)

	m.Row(14, func() {
		m.Col(12, func() {
			m.Text("DRESSCOLLECTIONS LINE SHEET", props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated %s · %d products", generatedAt.Format("Jan 02, 2006 15:04 MST"), len(products)), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	grouped := map[string][]models.Product{}
	for _, p := range products {
		grouped[p.MainCategory] = append(grouped[p.MainCategory], p)
	}

	sections := append([]string(nil), models.Departments...)
	if len(grouped[""]) > 0 {
		sections = append(sections, "")
	}

	for _, dept := range sections {
		items := grouped[dept]
		if len(items) == 0 {
			continue
		}

		title := departmentLabels[dept]
		if title == "" {
			title = "Unassigned"
		}

		m.Row(10, func() {})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(strings.ToUpper(title), props.Text{
					Size:  12,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
		})
		lineSheetHeader(m)

		for _, p := range items {
			lineSheetRow(m, p)
		}
	}

	buf, err := m.Output()
	if err != nil {
		return nil, errors.Wrap(err, "render line sheet")
	}
	return &buf, nil
}

func lineSheetHeader(m pdf.Maroto) {
	headers := []struct {
		label string
		width uint
		align consts.Align
	}{
		{"SKU", 2, consts.Left},
		{"Product", 4, consts.Left},
		{"Category", 2, consts.Left},
		{"Sizes", 2, consts.Left},
		{"Stock", 1, consts.Right},
		{"Price", 1, consts.Right},
	}

	m.Row(6, func() {
		for _, h := range headers {
			h := h
			m.Col(h.width, func() {
				m.Text(h.label, props.Text{
					Size:  8,
					Style: consts.Bold,
					Color: mediumGray,
					Align: h.align,
				})
			})
		}
	})
}

func lineSheetRow(m pdf.Maroto, p models.Product) {
	priceColor := darkGray
	if p.IsOnSale {
		priceColor = saleRed
	}

	m.Row(6, func() {
		m.Col(2, func() {
			m.Text(p.SKU, props.Text{Size: 8, Color: darkGray})
		})
		m.Col(4, func() {
			m.Text(p.Name, props.Text{Size: 8, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text(p.Category, props.Text{Size: 8, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text(strings.Join(p.Sizes, ", "), props.Text{Size: 8, Color: darkGray})
		})
		m.Col(1, func() {
			m.Text(fmt.Sprintf("%d", p.Stock), props.Text{Size: 8, Color: darkGray, Align: consts.Right})
		})
		m.Col(1, func() {
			m.Text(fmt.Sprintf("%.0f", p.Price), props.Text{Size: 8, Color: priceColor, Align: consts.Right})
		})
	})
}
