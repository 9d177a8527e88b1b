package ration

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook renders a calculated ration as a two-sheet workbook: the
// per-feed plan and a requirement/adequacy summary.
func BuildWorkbook(req CalculateRequest, result *Result) (*excelize.File, error) {
	f := excelize.NewFile()

	planSheet := "Ration Plan"
	f.SetSheetName("Sheet1", planSheet)

	headers := []string{
		"Feed", "Category", "Quantity (kg/day)", "Price (per kg)",
		"Cost (per day)", "DM (kg)", "CP (kg)", "TDN (kg)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(planSheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(planSheet, 1, 1, headerStyle)

	for i, l := range result.Lines {
		row := i + 2
		f.SetCellValue(planSheet, fmt.Sprintf("A%d", row), l.FeedName)
		f.SetCellValue(planSheet, fmt.Sprintf("B%d", row), l.Category)
		f.SetCellValue(planSheet, fmt.Sprintf("C%d", row), l.QuantityKg)
		f.SetCellValue(planSheet, fmt.Sprintf("D%d", row), l.PricePerKg)
		f.SetCellValue(planSheet, fmt.Sprintf("E%d", row), l.Cost)
		f.SetCellValue(planSheet, fmt.Sprintf("F%d", row), l.DMProvidedKg)
		f.SetCellValue(planSheet, fmt.Sprintf("G%d", row), l.CPProvidedKg)
		f.SetCellValue(planSheet, fmt.Sprintf("H%d", row), l.TDNProvidedKg)
	}

	summarySheet := "Summary"
	f.NewSheet(summarySheet)

	costPerLitre := "n/a"
	if result.CostPerLitreMilk != nil {
		costPerLitre = fmt.Sprintf("%.2f", *result.CostPerLitreMilk)
	}

	summary := [][]interface{}{
		{"", "Required", "Provided"},
		{"Dry Matter (kg)", result.Required.DMKg, result.Provided.DMKg},
		{"Crude Protein (kg)", result.Required.CPKg, result.Provided.CPKg},
		{"TDN (kg)", result.Required.TDNKg, result.Provided.TDNKg},
		{},
		{"Status", req.StatusID},
		{"Body weight (kg)", req.BodyWeightKg},
		{"Milk yield (L/day)", req.MilkYieldL},
		{"Total cost (per day)", result.TotalCost},
		{"Cost per litre of milk", costPerLitre},
		{"Protein adequacy", string(result.ProteinStatus)},
		{"Energy adequacy", string(result.EnergyStatus)},
	}
	for i, rowData := range summary {
		for j, v := range rowData {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(summarySheet, cell, v)
		}
	}
	f.SetRowStyle(summarySheet, 1, 1, headerStyle)

	return f, nil
}
