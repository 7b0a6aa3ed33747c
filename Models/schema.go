package Models

import (
	"fmt"
	"log"
	"strings"
)

// ColumnSpec is one column of a managed table, as (name, sqlite type) pair.
type ColumnSpec struct {
	Name string
	Type string
}

// TableSpecs are the tables guaranteed to exist at boot. The bookings table is
// a legacy leftover kept migrated so old deployments keep working.
var TableSpecs = map[string][]ColumnSpec{
	"admin": {
		{Name: "email", Type: "TEXT UNIQUE"},
		{Name: "password", Type: "TEXT"},
	},
	"website_leads": {
		{Name: "name", Type: "TEXT"},
		{Name: "mobile", Type: "TEXT"},
		{Name: "email", Type: "TEXT"},
		{Name: "test_name", Type: "TEXT"},
		{Name: "message", Type: "TEXT"},
		{Name: "status", Type: "TEXT DEFAULT 'pending'"},
		{Name: "created_at", Type: "DATETIME"},
	},
	"appointments": {
		{Name: "name", Type: "TEXT"},
		{Name: "mobile", Type: "TEXT"},
		{Name: "email", Type: "TEXT"},
		{Name: "test_name", Type: "TEXT"},
		{Name: "message", Type: "TEXT"},
		{Name: "status", Type: "TEXT DEFAULT 'pending'"},
		{Name: "created_at", Type: "DATETIME"},
	},
	"bookings": {
		{Name: "name", Type: "TEXT"},
		{Name: "mobile", Type: "TEXT"},
		{Name: "email", Type: "TEXT"},
		{Name: "test_name", Type: "TEXT"},
		{Name: "message", Type: "TEXT"},
		{Name: "status", Type: "TEXT DEFAULT 'pending'"},
		{Name: "seen", Type: "INTEGER DEFAULT 0"},
	},
}

// EnsureTable guarantees table exists with at least the given columns. A
// missing table is created with an autoincrement id primary key plus the
// columns. An existing table only gets missing columns added; nothing is ever
// dropped, renamed or retyped, and pre-existing data is left alone. Safe to
// call any number of times.
func EnsureTable(table string, columns []ColumnSpec) error {
	if !DB.Migrator().HasTable(table) {
		defs := make([]string, 0, len(columns))
		for _, col := range columns {
			defs = append(defs, fmt.Sprintf("%s %s", col.Name, col.Type))
		}
		stmt := fmt.Sprintf(
			"CREATE TABLE %s (id INTEGER PRIMARY KEY AUTOINCREMENT, %s)",
			table, strings.Join(defs, ", "),
		)
		return DB.Exec(stmt).Error
	}

	existing, err := tableColumns(table)
	if err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col.Name]; ok {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col.Name, col.Type)
		if err := DB.Exec(stmt).Error; err != nil {
			// Concurrent boots can race the same ALTER; a duplicate column
			// is indistinguishable from already-migrated, so just log it.
			log.Printf("EnsureTable %s: add column %s: %v", table, col.Name, err)
		}
	}
	return nil
}

func tableColumns(table string) (map[string]struct{}, error) {
	types, err := DB.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, err
	}
	cols := make(map[string]struct{}, len(types))
	for _, t := range types {
		cols[t.Name()] = struct{}{}
	}
	return cols, nil
}

// ColumnOrder returns the table's column names in their live schema order,
// so read paths and exports track columns added after first deploy.
func ColumnOrder(table string) ([]string, error) {
	types, err := DB.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name())
	}
	return names, nil
}
