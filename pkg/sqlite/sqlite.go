package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const pragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// uriPathEscaper экранирует символы, которые SQLite URI трактует как разделители
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// buildDSN строит file: URI для пути к базе. SQLite декодирует %XX в пути обратно.
func buildDSN(path string) string {
	return "file:" + uriPathEscaper.Replace(path) + "?" + pragmas
}

// Open открывает файл базы SQLite на устройстве, создавая каталог при необходимости
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := buildDSN(path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Один писатель на файл
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}
