package dataset

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/bracketsim/internal/models"
)

// Required CSV columns, matched case-insensitively.
const (
	ColumnTeam     = "team"
	ColumnSeed     = "seed"
	ColumnDivision = "division"
	ColumnOdds     = "odds"
)

var requiredColumns = []string{ColumnTeam, ColumnSeed, ColumnDivision, ColumnOdds}

// teamRecord is one CSV row after decoding.
type teamRecord struct {
	Team     string  `mapstructure:"team"`
	Seed     string  `mapstructure:"seed"`
	Division string  `mapstructure:"division"`
	Odds     float64 `mapstructure:"odds"`
}

// LoadField reads a team CSV and arranges it into a field in the given
// division order.
func LoadField(path string, order []string) (models.Field, error) {
	rows, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}

	divisions, err := BuildDivisions(rows)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	field, err := divisions.Ordered(order)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	slog.Info("Loaded field", "path", path, "divisions", len(field), "entrants", field.Size())
	return field, nil
}

// BuildDivisions turns rows into entrants grouped by division, keeping file
// order within each division. Every bad row is reported, not just the first.
func BuildDivisions(rows []Row) (models.Divisions, error) {
	if len(rows) == 0 {
		return nil, models.Malformed("no teams found")
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := rows[0][col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, models.Malformed("missing required column(s) %v", missing)
	}

	divisions := make(models.Divisions)
	var errs []error
	for i, row := range rows {
		e, err := decodeRow(row)
		if err != nil {
			// row 1 is the header
			errs = append(errs, fmt.Errorf("row %d: %w", i+2, err))
			continue
		}
		divisions.Add(e)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return divisions, nil
}

func decodeRow(row Row) (models.Entrant, error) {
	for _, col := range requiredColumns {
		if row[col] == "" {
			return models.Entrant{}, models.Malformed("%s is empty", col)
		}
	}

	var rec teamRecord
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &rec,
	})
	if err != nil {
		return models.Entrant{}, err
	}
	if err := decoder.Decode(map[string]string(row)); err != nil {
		return models.Entrant{}, models.Malformed("%s: %v", row[ColumnTeam], err)
	}

	return models.NewEntrant(rec.Team, rec.Seed, rec.Division, rec.Odds)
}
