package report

import (
	"fmt"

	"github.com/ikkim/shop-api/internal/app/model"
	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ItemsSheet = "Items"
	CartsSheet = "Carts"
)

var (
	itemsHeader = []interface{}{"ID", "Name", "Price", "Deleted"}
	cartsHeader = []interface{}{"ID", "Lines", "Quantity", "Price"}
)

// BuildCatalogWorkbook renders the catalog and carts as an xlsx document.
func BuildCatalogWorkbook(items []model.Item, carts []model.Cart) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ItemsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(CartsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	itemRows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		itemRows = append(itemRows, []interface{}{item.ID, item.Name, item.Price, item.Deleted})
	}
	if err := writeSheet(f, ItemsSheet, itemsHeader, itemRows, headerStyle); err != nil {
		return nil, err
	}

	cartRows := make([][]interface{}, 0, len(carts))
	for i := range carts {
		cart := &carts[i]
		cartRows = append(cartRows, []interface{}{cart.ID, len(cart.Items), cart.TotalQuantity(), cart.Price})
	}
	if err := writeSheet(f, CartsSheet, cartsHeader, cartRows, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
