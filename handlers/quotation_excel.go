package handlers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhun5568/Project-Aegis/models"
	"github.com/jhun5568/Project-Aegis/pkg/ptop"
)

var quotationColumns = []struct {
	Label string
	Width float64
}{
	{"No.", 6},
	{"Material", 28},
	{"Specification", 24},
	{"Unit", 8},
	{"Qty", 10},
	{"Unit Price", 14},
	{"Amount", 16},
	{"Notes", 26},
}

// createQuotationWorkbook lays the expanded quotation out on a single sheet:
// title block, column header row, one row per line item with model section
// headers spanning the full width, then the supply/VAT/total block.
func createQuotationWorkbook(title, customerName, projectName string, q *ptop.Quotation) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Quotation"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	if customerName != "" {
		f.SetCellValue(sheetName, "A3", fmt.Sprintf("Customer: %s", customerName))
	}
	if projectName != "" {
		f.SetCellValue(sheetName, "D3", fmt.Sprintf("Project: %s", projectName))
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	const headerRow = 5
	for colIdx, col := range quotationColumns {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, headerRow)
		f.SetCellValue(sheetName, cell, col.Label)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, columnIndexToLetter(colIdx+1), columnIndexToLetter(colIdx+1), col.Width)
	}

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})
	sectionStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D9E1F2"},
			Pattern: 1,
		},
	})

	row := headerRow + 1
	itemNo := 0
	for _, item := range q.Items {
		if item.IsHeader {
			startCell, _ := excelize.CoordinatesToCellName(1, row)
			endCell, _ := excelize.CoordinatesToCellName(len(quotationColumns), row)
			f.MergeCell(sheetName, startCell, endCell)
			label := item.MaterialName
			if spans, ok := q.Spans[item.ModelName]; ok {
				label = fmt.Sprintf("%s  (%d spans)", label, spans)
			}
			f.SetCellValue(sheetName, startCell, label)
			f.SetCellStyle(sheetName, startCell, endCell, sectionStyle)
			row++
			continue
		}

		itemNo++
		values := []interface{}{
			itemNo,
			item.MaterialName,
			item.Standard,
			item.Unit,
			decimalCell(item.Quantity),
			decimalCell(item.UnitPrice),
			decimalCell(item.Amount),
			item.Notes,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
		row++
	}

	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E7E6E6"},
			Pattern: 1,
		},
	})

	row++
	summaryRows := []struct {
		Label string
		Value decimal.Decimal
	}{
		{"Supply Price", q.Summary.SupplyPrice},
		{"VAT (10%)", q.Summary.VAT},
		{"Total", q.Summary.Total},
	}
	for _, s := range summaryRows {
		labelCell, _ := excelize.CoordinatesToCellName(len(quotationColumns)-1, row)
		valueCell, _ := excelize.CoordinatesToCellName(len(quotationColumns), row)
		f.SetCellValue(sheetName, labelCell, s.Label)
		f.SetCellValue(sheetName, valueCell, decimalCell(s.Value))
		f.SetCellStyle(sheetName, labelCell, valueCell, summaryStyle)
		row++
	}

	f.DeleteSheet("Sheet1")

	return f, nil
}

// createOrderWorkbook lays a purchase order out on a single sheet: header
// block with order metadata, then the aggregated material lines.
func createOrderWorkbook(order *models.PurchaseOrder) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "PurchaseOrder"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Purchase Order %s", order.OrderNo))
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	if order.Vendor != nil {
		f.SetCellValue(sheetName, "A3", fmt.Sprintf("Vendor: %s", order.Vendor.Name))
	}
	if order.Project != nil {
		f.SetCellValue(sheetName, "D3", fmt.Sprintf("Project: %s", order.Project.Name))
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	columns := []struct {
		Label string
		Width float64
	}{
		{"No.", 6},
		{"Material", 28},
		{"Specification", 24},
		{"Unit", 8},
		{"Qty", 10},
		{"Unit Price", 14},
		{"Amount", 16},
		{"Notes", 26},
	}

	const headerRow = 5
	for colIdx, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, headerRow)
		f.SetCellValue(sheetName, cell, col.Label)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, columnIndexToLetter(colIdx+1), columnIndexToLetter(colIdx+1), col.Width)
	}

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})

	total := decimal.Zero
	row := headerRow + 1
	for i, item := range order.Items {
		values := []interface{}{
			i + 1,
			item.MaterialName,
			item.Standard,
			item.Unit,
			decimalCell(item.Quantity),
			decimalCell(item.UnitPrice),
			decimalCell(item.Amount),
			item.Notes,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
		total = total.Add(item.Amount)
		row++
	}

	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E7E6E6"},
			Pattern: 1,
		},
	})
	row++
	labelCell, _ := excelize.CoordinatesToCellName(len(columns)-1, row)
	valueCell, _ := excelize.CoordinatesToCellName(len(columns), row)
	f.SetCellValue(sheetName, labelCell, "Total")
	f.SetCellValue(sheetName, valueCell, decimalCell(total))
	f.SetCellStyle(sheetName, labelCell, valueCell, summaryStyle)

	f.DeleteSheet("Sheet1")

	return f, nil
}

// decimalCell converts for SetCellValue, which has no decimal.Decimal case.
func decimalCell(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func sanitizeFilename(filename string) string {
	replacements := map[rune]rune{
		'/':  '_',
		'\\': '_',
		':':  '_',
		'*':  '_',
		'?':  '_',
		'"':  '_',
		'<':  '_',
		'>':  '_',
		'|':  '_',
		' ':  '_',
	}

	result := []rune{}
	for _, char := range filename {
		if replacement, exists := replacements[char]; exists {
			result = append(result, replacement)
		} else {
			result = append(result, char)
		}
	}

	return string(result)
}

func columnIndexToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+(col%26))) + result
		col /= 26
	}
	return result
}
