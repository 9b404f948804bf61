package repotest

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

var createTable = regexp.MustCompile(`(?is)CREATE TABLE IF NOT EXISTS\s+"?(\w+)"?\s*\((.*?)\n\);`)

var tableConstraints = []string{"primary", "foreign", "unique", "check", "constraint"}

// MigrationColumns parses the CREATE TABLE statements under migrations/
// into table -> column -> column definition.
func MigrationColumns(t testing.TB) map[string]map[string]string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	dir := filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")

	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no migrations in %s", dir)

	tables := make(map[string]map[string]string)
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		for _, match := range createTable.FindAllStringSubmatch(string(raw), -1) {
			columns := make(map[string]string)
			for _, line := range strings.Split(match[2], "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "--") {
					continue
				}
				name := strings.ToLower(strings.Trim(strings.Fields(line)[0], `"`))
				if lo.Contains(tableConstraints, name) {
					continue
				}
				columns[name] = strings.ToUpper(line)
			}
			tables[strings.ToLower(match[1])] = columns
		}
	}
	return tables
}

// RequireMigrationCovers fails when a model's table or a mapped column is
// missing from the migrations, or when their nullability disagrees.
func RequireMigrationCovers(t testing.TB, models ...any) {
	t.Helper()

	tables := MigrationColumns(t)
	cache := &sync.Map{}
	for _, model := range models {
		parsed, err := schema.Parse(model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		columns, ok := tables[parsed.Table]
		require.True(t, ok, "table %q has no CREATE TABLE in migrations", parsed.Table)

		for _, field := range parsed.Fields {
			if field.DBName == "" {
				continue
			}
			definition, ok := columns[field.DBName]
			require.True(t, ok, "column %s.%s missing from migrations", parsed.Table, field.DBName)

			sqlNotNull := strings.Contains(definition, "NOT NULL") || strings.Contains(definition, "PRIMARY KEY")
			if field.NotNull {
				require.True(t, sqlNotNull, "%s.%s is not null in the model but nullable in SQL", parsed.Table, field.DBName)
			}
			if field.FieldType.Kind() == reflect.Ptr {
				require.False(t, sqlNotNull, "%s.%s is a pointer in the model but NOT NULL in SQL", parsed.Table, field.DBName)
			}
		}
	}
}
