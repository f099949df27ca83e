package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type seedItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// readItemsFromXLSX reads the first sheet. The header row must contain Name
// and Price columns; a Deleted column, as written by the catalog report, skips
// rows marked deleted.
func readItemsFromXLSX(filePath string) ([]seedItem, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	return parseItemRows(rows)
}

func parseItemRows(rows [][]string) ([]seedItem, int, error) {
	columns := make(map[string]int)
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}

	nameCol, ok := columns["name"]
	if !ok {
		return nil, 0, fmt.Errorf("missing Name column")
	}
	priceCol, ok := columns["price"]
	if !ok {
		return nil, 0, fmt.Errorf("missing Price column")
	}
	deletedCol, hasDeleted := columns["deleted"]

	var items []seedItem
	skipped := 0
	for _, row := range rows[1:] {
		name := cell(row, nameCol)
		price, err := strconv.ParseFloat(cell(row, priceCol), 64)
		if name == "" || err != nil || price < 0 {
			skipped++
			continue
		}
		if hasDeleted {
			if deleted, _ := strconv.ParseBool(cell(row, deletedCol)); deleted {
				skipped++
				continue
			}
		}
		items = append(items, seedItem{Name: name, Price: price})
	}
	return items, skipped, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
