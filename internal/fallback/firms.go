package fallback

import (
	_ "embed"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/firms"
	"github.com/rm-hull/prop-firms-api/internal/models"
)

//go:embed firms.csv
var firmsCSV string

var directory = sync.OnceValue(func() *firms.Directory {
	return firms.BuildDirectory(internal.ParseCSV(firmsCSV))
})

// Directory is the bundled firm list, served whenever the live sheet is
// unavailable.
func Directory() *firms.Directory {
	return directory()
}

// Firms returns the bundled list as written, without de-duplicating keys.
func Firms() []models.Firm {
	rows := internal.ParseCSV(firmsCSV)
	arr := make([]models.Firm, 0, len(rows))
	for i, row := range rows {
		arr = append(arr, firms.NormalizeRow(row, i).Firm)
	}
	return arr
}

func Map() (FirmMap, error) {
	list := Firms()

	m := make(FirmMap, len(list))
	for _, firm := range list {
		if _, ok := m[firm.Key]; ok {
			return nil, errors.Newf("duplicate key detected: %s", firm.Key)
		}
		m[firm.Key] = firm
	}

	return m, nil
}

type FirmMap map[string]models.Firm
