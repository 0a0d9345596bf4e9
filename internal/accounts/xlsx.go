package accounts

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook returns every row of the named sheet, or of the first sheet
// when sheet is empty.
func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open accounts workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("accounts workbook %s has no sheets", path)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheet, err)
	}
	return rows, nil
}
