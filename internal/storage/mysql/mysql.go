package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/jh1234887/safe-work-permit/internal/config"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.mysql.New"

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=%v",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.ParseTime,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// EnsureSchema — 시작 시 테이블 생성, 이미 있으면 통과
func (s *Storage) EnsureSchema(ctx context.Context) error {
	const op = "storage.mysql.EnsureSchema"

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS drafts (
			draft_key  VARCHAR(64) PRIMARY KEY,
			data       JSON NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id           VARCHAR(64) PRIMARY KEY,
			submitted_at DATETIME(3) NOT NULL,
			company_name VARCHAR(255) NOT NULL DEFAULT '',
			name         VARCHAR(255) NOT NULL DEFAULT '',
			contact      VARCHAR(255) NOT NULL DEFAULT '',
			payload      JSON NOT NULL,
			INDEX idx_submitted_at (submitted_at)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
