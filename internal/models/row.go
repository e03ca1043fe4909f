package models

// Row is a single spreadsheet line keyed by trimmed header name.
type Row map[string]string

// ParseError describes a recoverable problem found while parsing CSV text.
// Row is the 1-based data row number (the header is not counted).
type ParseError struct {
	Row     int    `json:"row"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	TooFewFields  = "TooFewFields"
	TooManyFields = "TooManyFields"
)

// ParseResult is the full output of parsing a sheet.
type ParseResult struct {
	Columns []string     `json:"columns"`
	Rows    []Row        `json:"rows"`
	Errors  []ParseError `json:"errors"`
}
