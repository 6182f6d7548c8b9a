package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jh1234887/safe-work-permit/internal/storage"
)

type SubmissionStore interface {
	LoadDraft(ctx context.Context, key string) ([]byte, error)
	SaveDraft(ctx context.Context, key string, data []byte) error
	SaveSubmission(ctx context.Context, sub storage.Submission) error
}

// Service — 3단계 완료 시 제출건 조립
type Service struct {
	store SubmissionStore
	now   func() time.Time
	newID func() string
}

func NewService(store SubmissionStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit 은 3단계 초안을 저장한 뒤 1·2단계 초안을 저장소에서 새로 읽어
// 제출건을 조립한다. 메모리에 들고 있던 값이 아니라 저장된 값이 기준.
// 호출할 때마다 새 id/시각이 발급된다 — 같은 입력을 두 번 제출하면 두 건.
func (s *Service) Submit(ctx context.Context, form storage.PermitForm) (*storage.Submission, error) {
	const op = "service.submit.Submit"

	formJSON, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.store.SaveDraft(ctx, storage.DraftKeyStep3, formJSON); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rawStep1, rawStep2 []byte
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawStep1, err = s.store.LoadDraft(gCtx, storage.DraftKeyStep1)
		return err
	})
	g.Go(func() error {
		var err error
		rawStep2, err = s.store.LoadDraft(gCtx, storage.DraftKeyStep2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	step1 := storage.ParseApplicantInfo(rawStep1)
	step2 := storage.ParseAcknowledgment(rawStep2)

	now := s.now()
	sub := storage.Submission{
		ID:          s.newID(),
		SubmittedAt: now,
		Date:        formatKoreanDate(now),
		Time:        now.Format("15:04"),
		CompanyName: step1.CompanyName,
		Name:        step1.Name,
		Contact:     step1.Contact,
		Step1Data:   step1,
		Step2Data:   step2,
		Step3Data:   form,
	}

	if err := s.store.SaveSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sub, nil
}

// ko-KR 날짜 표기: "2024. 6. 1."
func formatKoreanDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}
