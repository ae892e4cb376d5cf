package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/folio-hq/folio/internal/shared/logger"
)

var (
	scriptVersionPattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)
	migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// Generator writes new goose script files into a source directory. The
// embedded copy only picks them up on the next build.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration adds the next numbered script for every dialect and
// returns the created paths.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid migration name %q: use lowercase letters, digits and underscores", name)
	}

	var created []string
	for _, dialect := range []string{"mysql", "postgres"} {
		dir := filepath.Join(g.scriptsPath, dialect)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return created, fmt.Errorf("failed to create scripts directory: %w", err)
		}

		next, err := nextVersion(dir)
		if err != nil {
			return created, err
		}

		path := filepath.Join(dir, fmt.Sprintf("%03d_%s.sql", next, name))
		if err := os.WriteFile(path, []byte(scriptTemplate(name)), 0o644); err != nil {
			return created, fmt.Errorf("failed to write migration file: %w", err)
		}
		created = append(created, path)
	}

	g.logger.Infow("migration files created", "files", created)
	return created, nil
}

func nextVersion(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	highest := 0
	for _, e := range entries {
		m := scriptVersionPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if v, err := strconv.Atoi(m[1]); err == nil && v > highest {
			highest = v
		}
	}
	return highest + 1, nil
}

func scriptTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s

-- +goose Up


-- +goose Down

`, name)
}
