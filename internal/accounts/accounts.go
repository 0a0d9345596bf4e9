// =============================================================================
// pain.001 / pain.002 Batch Generator - Account List Loader
// =============================================================================
//
// Debtor and creditor accounts normally come from the configuration file.
// For larger test sets they can be kept in a workbook or CSV instead.
//
// FILE STRUCTURE (first row is a header and is skipped):
//
//   | Column A  | Column B     |
//   |-----------|--------------|
//   | Role      | Account      |
//   | debtor    | 42010256938  |
//   | creditor  | 96500461516  |
//
// Rows keep their order; the generator picks accounts round-robin by
// payment-info block index.
//
// =============================================================================

package accounts

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Role column values.
const (
	RoleDebtor   = "debtor"
	RoleCreditor = "creditor"
)

// Lists holds the accounts read from a file.
type Lists struct {
	Debtors   []string
	Creditors []string
}

// Columns defines which columns contain which data (0-based).
type Columns struct {
	RoleColumn    int
	AccountColumn int

	// DataStartRow is the first row holding an account (0-based).
	DataStartRow int
}

// DefaultColumns returns the default column layout.
func DefaultColumns() Columns {
	return Columns{
		RoleColumn:    0, // Column A
		AccountColumn: 1, // Column B
		DataStartRow:  1, // Row 2
	}
}

// Load reads account lists from an .xlsx or .csv file. sheet selects the
// worksheet of an .xlsx file; empty means the first sheet.
func Load(path, sheet string) (*Lists, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readWorkbook(path, sheet)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported accounts file %q: want .xlsx or .csv", path)
	}
	if err != nil {
		return nil, err
	}

	lists, err := parseRows(rows, DefaultColumns())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return lists, nil
}

// parseRows sorts rows into debtor and creditor lists. Blank rows are
// skipped; unknown roles are an error.
func parseRows(rows [][]string, columns Columns) (*Lists, error) {
	lists := &Lists{}

	for i := columns.DataStartRow; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}

		getCell := func(index int) string {
			if index < len(row) {
				return strings.TrimSpace(row[index])
			}
			return ""
		}

		role := strings.ToLower(getCell(columns.RoleColumn))
		account := getCell(columns.AccountColumn)
		if account == "" {
			return nil, fmt.Errorf("row %d: account is empty", i+1)
		}

		switch role {
		case RoleDebtor:
			lists.Debtors = append(lists.Debtors, account)
		case RoleCreditor:
			lists.Creditors = append(lists.Creditors, account)
		default:
			return nil, fmt.Errorf("row %d: unknown role %q", i+1, role)
		}
	}

	var errs []error
	if len(lists.Debtors) == 0 {
		errs = append(errs, errors.New("no debtor accounts"))
	}
	if len(lists.Creditors) == 0 {
		errs = append(errs, errors.New("no creditor accounts"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return lists, nil
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
