package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"petcare-go/pkg/logger"
)

// Migrate applies every *.sql file in dirName that is not yet recorded in
// schema_migrations, in lexical order, each inside its own transaction.
// It returns the names of the files it applied.
func Migrate(gormDB *gorm.DB, dirName string, log logger.Logger) ([]string, error) {
	path, err := findMigrationsDir(dirName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("db: migrations directory not found", "dir", dirName)
			return nil, nil
		}
		return nil, err
	}

	if err := ensureSchemaMigrations(gormDB); err != nil {
		return nil, err
	}

	files, err := listMigrations(path)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range files {
		done, err := isMigrationApplied(gormDB, name)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		contents, err := os.ReadFile(filepath.Join(path, name))
		if err != nil {
			return applied, err
		}

		sql := strings.TrimSpace(string(contents))
		if sql == "" {
			continue
		}

		err = gormDB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(sql).Error; err != nil {
				return err
			}
			return recordMigration(tx, name)
		})
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", name, err)
		}

		log.Info("db: migration applied", "file", name)
		applied = append(applied, name)
	}

	return applied, nil
}

func listMigrations(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".sql") {
			files = append(files, name)
		}
	}

	sort.Strings(files)
	return files, nil
}

func ensureSchemaMigrations(gormDB *gorm.DB) error {
	return gormDB.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`).Error
}

func isMigrationApplied(gormDB *gorm.DB, name string) (bool, error) {
	var count int64
	if err := gormDB.Raw("SELECT COUNT(1) FROM schema_migrations WHERE filename = ?", name).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func recordMigration(gormDB *gorm.DB, name string) error {
	return gormDB.Exec("INSERT INTO schema_migrations (filename, applied_at) VALUES (?, ?)", name, time.Now().UTC()).Error
}

// findMigrationsDir accepts an absolute path, or walks up from the working
// directory looking for a directory with the given name.
func findMigrationsDir(dirName string) (string, error) {
	if filepath.IsAbs(dirName) {
		info, err := os.Stat(dirName)
		if err != nil {
			return "", err
		}
		if !info.IsDir() {
			return "", os.ErrNotExist
		}
		return dirName, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, dirName)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}
