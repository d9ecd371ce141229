package dataprocessing

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"ratchetcli/pkg/contracts/domain"
)

// Expected input sheet names, matched case/space/punctuation-insensitively.
const (
	SheetPresTemp   = "PresTempPipeID"
	SheetProperties = "PipeProperties"
)

// FindSheet locates the sheet whose normalized name matches the expected
// one. Absence is reported as a no-match, not an error; the caller decides
// whether that aborts the file.
func FindSheet(f *excelize.File, expected string) (string, bool) {
	want := NormalizeSheetKey(expected)
	for _, name := range f.GetSheetList() {
		if NormalizeSheetKey(name) == want {
			return name, true
		}
	}
	return "", false
}

// LoadSheet reads the expected sheet into a Table, or records an
// error-level entry listing the sheets that were found. The first row is
// the header, the second row carries unit labels and is skipped.
func LoadSheet(f *excelize.File, expected string, log *domain.ErrorLog) (*Table, bool) {
	name, ok := FindSheet(f, expected)
	if !ok {
		log.Error("", fmt.Sprintf(
			"Missing sheet %s. Found sheets: %s",
			expected, strings.Join(f.GetSheetList(), ", ")))
		return nil, false
	}

	rows, err := f.GetRows(name)
	if err != nil {
		log.Error(expected, fmt.Sprintf("Failed to read sheet %s: %v", name, err))
		return nil, false
	}
	if len(rows) == 0 {
		return NewTable(expected, nil, nil, headerRows+1, log), true
	}

	header := rows[0]
	var data [][]string
	if len(rows) > headerRows {
		data = rows[headerRows:]
	}
	return NewTable(expected, header, data, headerRows+1, log), true
}
