// Package roster reads the candidate roster out of an xlsx spreadsheet
// and resolves each candidate's resume file on disk.
package roster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// The roster sheet carries five fixed columns; data starts below the
	// header block.
	rosterColumns = 5
	dataStartRow  = 5
)

// ErrNoSpreadsheet is returned when the target directory contains no xlsx file.
var ErrNoSpreadsheet = errors.New("no xlsx file found")

// Row is one roster record. Salary is an opaque passthrough value.
type Row struct {
	Position string
	FullName string
	Salary   string
	Comment  string
	Status   string
}

// FindSpreadsheet returns the path of the first xlsx file inside dir.
func FindSpreadsheet(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		// Excel lock files start with ~$ and are not rosters.
		if strings.HasPrefix(name, "~$") {
			continue
		}

		if strings.EqualFold(filepath.Ext(name), ".xlsx") {
			return filepath.Join(dir, name), nil
		}
	}

	return "", ErrNoSpreadsheet
}

// Read extracts roster rows from the spreadsheet's first sheet, starting
// at the fixed data offset. Rows are returned in sheet order; fully empty
// rows are skipped.
func Read(path string) ([]Row, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet %q: %w", path, err)
	}
	defer file.Close()

	cells, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading spreadsheet %q: %w", path, err)
	}

	var rows []Row

	for i := dataStartRow - 1; i < len(cells); i++ {
		columns := make([]string, rosterColumns)
		empty := true

		for j := 0; j < rosterColumns && j < len(cells[i]); j++ {
			columns[j] = cells[i][j]
			if strings.TrimSpace(columns[j]) != "" {
				empty = false
			}
		}

		if empty {
			continue
		}

		rows = append(rows, Row{
			Position: columns[0],
			FullName: columns[1],
			Salary:   columns[2],
			Comment:  columns[3],
			Status:   columns[4],
		})
	}

	return rows, nil
}
