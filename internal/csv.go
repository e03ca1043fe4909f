package internal

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

// ParseCSV returns one row per non-blank data line, keyed by the header line.
func ParseCSV(text string) []models.Row {
	return Parse(text).Rows
}

// Parse splits sheet text into rows. It never fails: column count mismatches
// are reported in Errors and the row is padded or truncated to fit the header.
//
// Header cells are split on every comma, quoted or not. Data cells honour
// double quotes, with "" as an escaped quote.
func Parse(text string) models.ParseResult {
	result := models.ParseResult{
		Rows:   []models.Row{},
		Errors: []models.ParseError{},
	}

	lines := nonBlankLines(stripBOM(text))
	if len(lines) == 0 {
		return result
	}

	header := splitHeader(lines[0])
	if header == nil {
		return result
	}
	result.Columns = header

	for i, line := range lines[1:] {
		cols := splitQuoted(line)
		rowNo := i + 1

		switch {
		case len(cols) < len(header):
			result.Errors = append(result.Errors, models.ParseError{
				Row:     rowNo,
				Code:    models.TooFewFields,
				Message: fmt.Sprintf("expected %d fields but parsed %d", len(header), len(cols)),
			})
		case len(cols) > len(header):
			result.Errors = append(result.Errors, models.ParseError{
				Row:     rowNo,
				Code:    models.TooManyFields,
				Message: fmt.Sprintf("expected %d fields but parsed %d", len(header), len(cols)),
			})
		}

		row := make(models.Row, len(header))
		for idx, name := range header {
			value := ""
			if idx < len(cols) {
				value = strings.TrimSpace(cols[idx])
			}
			row[name] = value
		}
		result.Rows = append(result.Rows, row)
	}

	return result
}

func stripBOM(text string) string {
	decoded, _, err := transform.String(unicode.BOMOverride(unicode.UTF8.NewDecoder()), text)
	if err != nil {
		return strings.TrimPrefix(text, "\ufeff")
	}
	return decoded
}

func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func splitHeader(line string) []string {
	cells := strings.Split(line, ",")
	header := make([]string, len(cells))
	empty := true
	for i, cell := range cells {
		header[i] = strings.TrimSpace(cell)
		if header[i] != "" {
			empty = false
		}
	}
	if empty {
		return nil
	}
	return header
}

func splitQuoted(line string) []string {
	var cols []string
	var current strings.Builder
	inQuote := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuote && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuote = !inQuote
			}
		case ch == ',' && !inQuote:
			cols = append(cols, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(cols, current.String())
}
