package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var spreadsheetExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
}

var spreadsheetContentTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
	"application/vnd.ms-excel.sheet.macroenabled.12":                    true,
}

// LooksLikeSpreadsheet accepts a file by extension or declared content type.
func LooksLikeSpreadsheet(fileName, contentType string) bool {
	if spreadsheetExtensions[strings.ToLower(filepath.Ext(fileName))] {
		return true
	}
	return spreadsheetContentTypes[strings.ToLower(strings.TrimSpace(contentType))]
}

// sheetRow is one populated data row together with its 1-based row number
// in the source sheet, so provenance survives empty rows being dropped.
type sheetRow struct {
	num   int
	cells map[string]string
}

// parseWorkbook reads the first sheet into an ordered sequence of rows,
// each a header->cell map. The first sheet row is the header row. Rows with
// no populated cell are dropped; the remaining rows keep their original
// sheet row numbers.
func parseWorkbook(path string) ([]sheetRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheets[0])
	}

	headers := rows[0]
	out := make([]sheetRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		row := map[string]string{}
		for j, cell := range cells {
			if j >= len(headers) {
				break
			}
			header := strings.TrimSpace(headers[j])
			if header == "" {
				continue
			}
			row[header] = cell
		}
		empty := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, sheetRow{num: i + 2, cells: row})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheets[0])
	}
	return out, nil
}
