package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jh1234887/safe-work-permit/internal/storage"
)

// SaveSubmission — 제출건 영구 저장, 이후 수정 없음
func (s *Storage) SaveSubmission(ctx context.Context, sub storage.Submission) error {
	const op = "storage.mysql.SaveSubmission"

	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stmt := `
		INSERT INTO submissions (id, submitted_at, company_name, name, contact, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, stmt,
		sub.ID, sub.SubmittedAt, sub.CompanyName, sub.Name, sub.Contact, payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetSubmissions — 전체 제출 목록, 최신순
func (s *Storage) GetSubmissions(ctx context.Context) ([]*storage.Submission, error) {
	const op = "storage.mysql.GetSubmissions"

	stmt := `SELECT payload FROM submissions ORDER BY submitted_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var subs []*storage.Submission
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var sub storage.Submission
		if err := json.Unmarshal(payload, &sub); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		subs = append(subs, &sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subs, nil
}

// GetSubmission — id 로 단건 조회, 없으면 nil (핸들러에서 404 처리)
func (s *Storage) GetSubmission(ctx context.Context, id string) (*storage.Submission, error) {
	const op = "storage.mysql.GetSubmission"

	stmt := `SELECT payload FROM submissions WHERE id = ?`

	var payload []byte
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var sub storage.Submission
	if err := json.Unmarshal(payload, &sub); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sub, nil
}

// DeleteSubmission — id 불일치면 그냥 통과 (no-op)
func (s *Storage) DeleteSubmission(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteSubmission"

	stmt := `DELETE FROM submissions WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, stmt, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
