package domain

// Error log severities. Errors are structural and abort the file,
// warnings are data-quality findings and processing continues with nulls.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// ErrorEntry is one record destined for the Errors sheet of the output
// workbook. Row is the one-based spreadsheet row in the source sheet when
// the finding is tied to a cell.
type ErrorEntry struct {
	File    string
	Sheet   string
	Level   string
	Message string
	Row     *int
	Column  string
	Value   string
}

// ErrorLog accumulates findings for one input file. It is append-only and
// never fails; entries are flushed to the Errors sheet at the end of the
// file's run.
type ErrorLog struct {
	File    string
	entries []ErrorEntry
}

// NewErrorLog creates an empty log for the named input file.
func NewErrorLog(file string) *ErrorLog {
	return &ErrorLog{File: file}
}

// Append adds a fully specified entry, stamping the log's file name.
func (l *ErrorLog) Append(e ErrorEntry) {
	e.File = l.File
	l.entries = append(l.entries, e)
}

// Error records a structural finding for a sheet.
func (l *ErrorLog) Error(sheet, message string) {
	l.Append(ErrorEntry{Sheet: sheet, Level: LevelError, Message: message})
}

// Warning records a data-quality finding for a sheet.
func (l *ErrorLog) Warning(sheet, message string) {
	l.Append(ErrorEntry{Sheet: sheet, Level: LevelWarning, Message: message})
}

// CellWarning records a data-quality finding tied to a specific cell.
func (l *ErrorLog) CellWarning(sheet, message string, row int, column, value string) {
	l.Append(ErrorEntry{
		Sheet:   sheet,
		Level:   LevelWarning,
		Message: message,
		Row:     Int(row),
		Column:  column,
		Value:   value,
	})
}

// Entries returns the accumulated entries in append order.
func (l *ErrorLog) Entries() []ErrorEntry { return l.entries }

// Len returns the number of accumulated entries.
func (l *ErrorLog) Len() int { return len(l.entries) }

// HasErrors reports whether any error-level entry was recorded.
func (l *ErrorLog) HasErrors() bool {
	for _, e := range l.entries {
		if e.Level == LevelError {
			return true
		}
	}
	return false
}
