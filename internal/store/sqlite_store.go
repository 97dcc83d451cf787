package store

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLitePaletteStore implements PaletteStore on a single SQLite table.
type SQLitePaletteStore struct {
	db *sql.DB
}

// NewSQLitePaletteStore opens (creating if needed) the database at path and
// applies embedded migrations.
func NewSQLitePaletteStore(path string) (*SQLitePaletteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, swerr.Storage("open", fmt.Errorf("error creating database directory: %w", err))
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, swerr.Storage("open", fmt.Errorf("error opening database: %w", err))
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, swerr.Storage("open", fmt.Errorf("error running migrations: %w", err))
	}

	return &SQLitePaletteStore{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not create source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}

// Save inserts or replaces a palette row.
func (s *SQLitePaletteStore) Save(p *model.Palette) error {
	if err := validateForSave(p); err != nil {
		return err
	}
	p.Version = version.CurrentPaletteVersion

	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return swerr.Storage("save", fmt.Errorf("failed to marshal colors: %w", err))
	}

	_, err = s.db.Exec(`
		INSERT INTO palettes (id, alias, name, harmony, theme, colors, created_at_millis, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			alias = excluded.alias,
			name = excluded.name,
			harmony = excluded.harmony,
			theme = excluded.theme,
			colors = excluded.colors,
			created_at_millis = excluded.created_at_millis,
			version = excluded.version`,
		p.ID, p.Alias, p.Name, string(p.Harmony), string(p.Theme), string(colors), p.CreatedAtMillis, p.Version,
	)
	if err != nil {
		return swerr.Storage("save", err)
	}
	return nil
}

const selectColumns = `SELECT id, alias, name, harmony, theme, colors, created_at_millis, version FROM palettes`

// Get reads a palette by id.
func (s *SQLitePaletteStore) Get(id string) (*model.Palette, error) {
	row := s.db.QueryRow(selectColumns+` WHERE id = ?`, id)
	p, err := scanPalette(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, swerr.PaletteNotFound(id)
		}
		return nil, swerr.Storage("load", err)
	}
	return p, nil
}

// List returns all palettes, newest first.
func (s *SQLitePaletteStore) List() ([]*model.Palette, error) {
	rows, err := s.db.Query(selectColumns + ` ORDER BY created_at_millis DESC, id ASC`)
	if err != nil {
		return nil, swerr.Storage("list", err)
	}
	defer rows.Close()

	palettes := []*model.Palette{}
	for rows.Next() {
		p, err := scanPalette(rows)
		if err != nil {
			return nil, swerr.Storage("list", err)
		}
		palettes = append(palettes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, swerr.Storage("list", err)
	}
	return palettes, nil
}

// Delete removes a palette row.
func (s *SQLitePaletteStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM palettes WHERE id = ?`, id)
	if err != nil {
		return swerr.Storage("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return swerr.Storage("delete", err)
	}
	if n == 0 {
		return swerr.PaletteNotFound(id)
	}
	return nil
}

// FindByAlias returns the newest palette with the alias.
func (s *SQLitePaletteStore) FindByAlias(alias string) (*model.Palette, error) {
	row := s.db.QueryRow(selectColumns+` WHERE alias = ? ORDER BY created_at_millis DESC LIMIT 1`, alias)
	p, err := scanPalette(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, swerr.PaletteNotFound(alias)
		}
		return nil, swerr.Storage("load", err)
	}
	return p, nil
}

// Close closes the database.
func (s *SQLitePaletteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPalette(row scanner) (*model.Palette, error) {
	var (
		p       model.Palette
		harmony string
		theme   string
		colors  string
	)
	if err := row.Scan(&p.ID, &p.Alias, &p.Name, &harmony, &theme, &colors, &p.CreatedAtMillis, &p.Version); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(colors), &p.Colors); err != nil {
		return nil, fmt.Errorf("palette %s has invalid colors: %w", p.ID, err)
	}
	if p.Version != version.CurrentPaletteVersion {
		return nil, version.InvalidPaletteVersion("sqlite:"+p.ID, p.Version)
	}
	p.Harmony = model.Harmony(harmony)
	p.Theme = model.Theme(theme)
	return &p, nil
}
