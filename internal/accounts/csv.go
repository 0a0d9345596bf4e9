package accounts

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
)

// readCSV returns every record of a comma-separated accounts file.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open accounts file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts CSV: %w", err)
	}
	return rows, nil
}
