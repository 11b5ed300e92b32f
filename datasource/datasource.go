// Package datasource implements hepce.DataSource against a per-run
// SQLite database, the concrete form of the "external collaborator"
// spec §6 describes as tabular inputs keyed by demographic/clinical
// cells. Key columns are read as TEXT (matching each enum's String()
// form) and every other column as REAL.
package datasource

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	hepce "github.com/SyndemicsLab/hep-ce-go"
	"github.com/SyndemicsLab/hep-ce-go/config"
)

// keyColumns lists, for every tabular input named in spec §6, which
// columns form its lookup key (read as text) versus its value columns
// (read as numeric). Tables not listed here are assumed keyless
// (init_cohort, population) and are handled by their own loaders.
var keyColumns = map[string][]string{
	"background_costs_utilities":  {"age_years", "sex", "behavior"},
	"behavior_transitions":        {"age_years", "sex", "moud_state", "behavior"},
	"behavior_impacts":            {"sex", "behavior"},
	"fibrosis_progression":        {"true_fib"},
	"hcv_impacts":                 {"infected", "fibrosis_state"},
	"incidence":                   {"age_years", "sex", "behavior"},
	"fibrosis_staging_test_one":   {"true_fib"},
	"fibrosis_staging_test_two":   {"true_fib"},
	"hcc_progression":             {"true_fib"},
	"hcc_diagnosis":               {"true_fib"},
	"hcv_screening_background":    {"age_years", "sex", "behavior"},
	"hcv_screening_intervention":  {"age_years", "sex", "behavior"},
	"hiv_screening_background":    {"age_years", "sex", "behavior"},
	"hiv_screening_intervention":  {"age_years", "sex", "behavior"},
	"hcv_linking_base":            {"age_years", "sex", "behavior", "pregnancy_state"},
	"hiv_linking_base":            {"age_years", "sex", "behavior", "pregnancy_state"},
	"treatments":                  {"in_retreatment", "genotype_three", "cirrhotic"},
	"hiv_treatments":              {"course"},
	"HIV_table":                   {"on_treatment", "high_cd4"},
	"overdoses":                   {"behavior", "moud_state"},
	"moud_transitions":            {"current_state", "age_years", "sex"},
	"moud_utilities":              {"current_state"},
	"background_mortality":        {"age_years", "sex", "behavior"},
	"SMR":                         {"sex"},
	"pregnancy":                   {"age_years", "gestation"},
}

// SQLDataSource implements hepce.DataSource against a flat config.Store
// and a SQLite database of tabular inputs.
type SQLDataSource struct {
	*config.Store
	db *sql.DB
}

// Open connects to the SQLite database at path, pairing it with the
// already-loaded configuration store.
func Open(cfg *config.Store, path string) (*SQLDataSource, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("datasource: opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("datasource: connecting to %s: %w", path, err)
	}
	return &SQLDataSource{Store: cfg, db: db}, nil
}

// Close releases the underlying database connection.
func (s *SQLDataSource) Close() error { return s.db.Close() }

// LoadTable implements hepce.DataSource: every row of name is read once
// and returned in full, so callers (event constructors) can build their
// own in-memory index and never touch the database again.
func (s *SQLDataSource) LoadTable(name string) ([]hepce.TableRow, bool) {
	keys, known := keyColumns[name]
	if !known {
		keys = nil
	}

	rows, err := s.db.Query(fmt.Sprintf("SELECT * FROM %s", name))
	if err != nil {
		return nil, false
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, false
	}
	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}

	var out []hepce.TableRow
	for rows.Next() {
		raw := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, false
		}

		row := hepce.TableRow{Values: make(map[string]float64, len(cols))}
		keyed := make(map[string]string, len(keys))
		for i, col := range cols {
			if keySet[col] {
				keyed[col] = fmt.Sprintf("%v", raw[i])
				continue
			}
			row.Values[col] = toFloat(raw[i])
		}
		for _, k := range keys {
			row.Key = append(row.Key, keyed[k])
		}
		out = append(out, row)
	}
	return out, true
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case []byte:
		var f float64
		fmt.Sscanf(string(t), "%g", &f)
		return f
	default:
		return 0
	}
}
