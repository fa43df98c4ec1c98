package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/loadout/internal/utils"
	"github.com/sirupsen/logrus"
)

// Dump is the TOML shape of a database export: table name to rows.
type Dump map[string][]map[string]any

// ExportTOML writes every row of every schema table into a single TOML file.
func (s *Storage) ExportTOML(outputPath string) error {
	dump, err := s.dump()
	if err != nil {
		return err
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	logrus.WithField("path", outputPath).Debug("database exported")
	return nil
}

func (s *Storage) dump() (Dump, error) {
	ctx := context.Background()
	dump := Dump{}

	for _, table := range Tables {
		rows, err := s.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", table))
		if err != nil {
			return nil, fmt.Errorf("querying table %s: %w", table, err)
		}

		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("getting columns for table %s: %w", table, err)
		}

		tableData := []map[string]any{}
		for rows.Next() {
			values := make([]any, len(cols))
			valuePtrs := make([]any, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := rows.Scan(valuePtrs...); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scanning row in table %s: %w", table, err)
			}

			rowMap := make(map[string]any)
			for i, col := range cols {
				switch val := values[i].(type) {
				case nil:
					// TOML has no null.
				case []byte:
					rowMap[col] = string(val)
				default:
					rowMap[col] = val
				}
			}
			tableData = append(tableData, rowMap)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("iterating table %s: %w", table, err)
		}

		dump[table] = tableData
	}
	return dump, nil
}

// DefaultExportPath is ~/.config/loadout/db_dump.toml.
func DefaultExportPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

// ImportTOML rebuilds the database from a dump written by ExportTOML. Every
// schema table is cleared, then the dumped rows are inserted, all in one
// transaction.
func (s *Storage) ImportTOML(filePath string) error {
	var dump Dump
	if _, err := toml.DecodeFile(filePath, &dump); err != nil {
		return fmt.Errorf("decoding %s: %w", filePath, err)
	}

	for table := range dump {
		if !slices.Contains(Tables, table) {
			return fmt.Errorf("unknown table %q in dump", table)
		}
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first.
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", Tables[i])); err != nil {
			return fmt.Errorf("clearing table %s: %w", Tables[i], err)
		}
	}

	for _, table := range Tables {
		for _, row := range dump[table] {
			columns := make([]string, 0, len(row))
			for col := range row {
				columns = append(columns, col)
			}
			sort.Strings(columns)

			placeholders := make([]string, len(columns))
			values := make([]any, len(columns))
			for i, col := range columns {
				placeholders[i] = "?"
				values[i] = row[col]
			}

			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
				table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("inserting into table %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	logrus.WithField("path", filePath).Debug("database imported")
	return nil
}
