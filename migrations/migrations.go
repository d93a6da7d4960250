// Package migrations embeds the database schema and applies it in order.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed *.sql
var files embed.FS

// Up applies every *.up.sql file in lexical order. The statements are idempotent.
func Up(ctx context.Context, db *sql.DB) error {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		if err := exec(ctx, db, name); err != nil {
			return err
		}
		log.Info().Str("migration", strings.TrimSuffix(name, ".up.sql")).Msg("Migration applied")
	}
	return nil
}

// Down reverts every migration in reverse order
func Down(ctx context.Context, db *sql.DB) error {
	names, err := fs.Glob(files, "*.down.sql")
	if err != nil {
		return err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, name := range names {
		if err := exec(ctx, db, name); err != nil {
			return err
		}
	}
	return nil
}

func exec(ctx context.Context, db *sql.DB, name string) error {
	body, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read migration %s: %w", name, err)
	}
	if _, err := db.ExecContext(ctx, string(body)); err != nil {
		return fmt.Errorf("failed to apply migration %s: %w", name, err)
	}
	return nil
}
