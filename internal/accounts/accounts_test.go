package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" {
		index, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(index)
	} else {
		sheet = "Sheet1"
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	path := filepath.Join(t.TempDir(), "accounts.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, "", [][]string{
		{"Role", "Account"},
		{"debtor", "42010256938"},
		{"Creditor", "96500461516"},
		{"", ""},
		{"DEBTOR", "42010256946"},
	})

	lists, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"42010256938", "42010256946"}, lists.Debtors)
	assert.Equal(t, []string{"96500461516"}, lists.Creditors)
}

func TestLoadWorkbookNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Accounts", [][]string{
		{"Role", "Account"},
		{"debtor", "D1"},
		{"creditor", "C1"},
	})

	lists, err := Load(path, "Accounts")
	require.NoError(t, err)
	assert.Equal(t, []string{"D1"}, lists.Debtors)
	assert.Equal(t, []string{"C1"}, lists.Creditors)

	_, err = Load(path, "Missing")
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	content := "role,account\ndebtor, 111\ncreditor,222\ncreditor,333\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lists, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"111"}, lists.Debtors)
	assert.Equal(t, []string{"222", "333"}, lists.Creditors)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	unknownRole := filepath.Join(dir, "role.csv")
	require.NoError(t, os.WriteFile(unknownRole, []byte("role,account\npayee,1\n"), 0o644))

	noCreditors := filepath.Join(dir, "debtors.csv")
	require.NoError(t, os.WriteFile(noCreditors, []byte("role,account\ndebtor,1\n"), 0o644))

	emptyAccount := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(emptyAccount, []byte("role,account\ndebtor,\n"), 0o644))

	tests := []struct {
		name    string
		path    string
		errText string
	}{
		{name: "unsupported extension", path: filepath.Join(dir, "accounts.json"), errText: "unsupported accounts file"},
		{name: "missing file", path: filepath.Join(dir, "missing.csv"), errText: "failed to open accounts file"},
		{name: "unknown role", path: unknownRole, errText: `unknown role "payee"`},
		{name: "no creditors", path: noCreditors, errText: "no creditor accounts"},
		{name: "empty account", path: emptyAccount, errText: "account is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
