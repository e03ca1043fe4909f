package firms

import (
	"fmt"
	"strings"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

// Directory is an immutable, key-indexed set of firms built from one sheet.
type Directory struct {
	Firms  []models.Firm
	Issues []models.RowIssue
	byKey  map[string]int
}

// BuildDirectory normalizes every row in order. Keys are made unique by
// suffixing later duplicates, which is reported as an issue on that row.
func BuildDirectory(rows []models.Row) *Directory {
	dir := &Directory{
		Firms:  make([]models.Firm, 0, len(rows)),
		Issues: []models.RowIssue{},
		byKey:  make(map[string]int, len(rows)),
	}

	for i, row := range rows {
		result := NormalizeRow(row, i)
		firm := result.Firm
		problems := result.Issues

		if _, exists := dir.byKey[firm.Key]; exists {
			original := firm.Key
			firm.Key = dir.uniqueKey(original)
			problems = append(problems, fmt.Sprintf("%s: %s renamed to %s", IssueDuplicateKey, original, firm.Key))
		}

		dir.byKey[firm.Key] = len(dir.Firms)
		dir.Firms = append(dir.Firms, firm)

		if len(problems) > 0 {
			// +2 accounts for the header line and 1-based numbering
			dir.Issues = append(dir.Issues, models.RowIssue{Row: i + 2, Key: firm.Key, Problems: problems})
		}
	}

	return dir
}

// NewDirectory indexes an existing list of firms. Later duplicates are dropped.
func NewDirectory(list []models.Firm) *Directory {
	dir := &Directory{
		Firms:  make([]models.Firm, 0, len(list)),
		Issues: []models.RowIssue{},
		byKey:  make(map[string]int, len(list)),
	}
	for _, firm := range list {
		if _, exists := dir.byKey[firm.Key]; exists {
			continue
		}
		dir.byKey[firm.Key] = len(dir.Firms)
		dir.Firms = append(dir.Firms, firm)
	}
	return dir
}

func (dir *Directory) uniqueKey(key string) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", key, n)
		if _, exists := dir.byKey[candidate]; !exists {
			return candidate
		}
	}
}

// Lookup finds a firm by exact key, then case-insensitively.
func (dir *Directory) Lookup(key string) (models.Firm, bool) {
	if idx, ok := dir.byKey[key]; ok {
		return dir.Firms[idx], true
	}
	lower := strings.ToLower(key)
	if idx, ok := dir.byKey[lower]; ok {
		return dir.Firms[idx], true
	}
	return models.Firm{}, false
}

// Find is Lookup with one more chance: keys are compared with hyphens removed,
// so "top-step" still finds "topstep".
func (dir *Directory) Find(key string) (models.Firm, bool) {
	if firm, ok := dir.Lookup(key); ok {
		return firm, true
	}
	want := squash(key)
	if want == "" {
		return models.Firm{}, false
	}
	for _, firm := range dir.Firms {
		if squash(firm.Key) == want {
			return firm, true
		}
	}
	return models.Firm{}, false
}

func squash(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "-", "")
}

func (dir *Directory) Len() int {
	return len(dir.Firms)
}

// Complete returns only firms carrying both a key and a name.
func (dir *Directory) Complete() *Directory {
	list := make([]models.Firm, 0, len(dir.Firms))
	for _, firm := range dir.Firms {
		if firm.Key != "" && firm.Name != "" {
			list = append(list, firm)
		}
	}
	complete := NewDirectory(list)
	complete.Issues = dir.Issues
	return complete
}
