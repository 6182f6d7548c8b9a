package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LoadDraft — 단계별 초안 조회, 없으면 nil (에러 아님)
func (s *Storage) LoadDraft(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.mysql.LoadDraft"

	stmt := `SELECT data FROM drafts WHERE draft_key = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, stmt, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// SaveDraft — 초안 전체를 덮어쓰기 저장, 마지막 쓰기가 이긴다
func (s *Storage) SaveDraft(ctx context.Context, key string, data []byte) error {
	const op = "storage.mysql.SaveDraft"

	stmt := `
		INSERT INTO drafts (draft_key, data) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data)
	`

	if _, err := s.db.ExecContext(ctx, stmt, key, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
