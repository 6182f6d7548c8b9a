package submit

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/jh1234887/safe-work-permit/internal/storage"
)

type Submitter interface {
	Submit(ctx context.Context, form storage.PermitForm) (*storage.Submission, error)
}

type Response struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// SubmitPermit — 완료 버튼. 본문은 3단계 폼 전체
func SubmitPermit(log *slog.Logger, svc Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.submission.submit.SubmitPermit"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("본문 읽기 실패", slog.String("error", err.Error()))
			http.Error(w, "잘못된 요청", http.StatusBadRequest)
			return
		}

		// 누락 필드는 기본값으로 채워 제출 — 3단계는 필수 항목이 없다
		form := storage.ParsePermitForm(body)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		sub, err := svc.Submit(ctx, form)
		if err != nil {
			log.Error("작업허가서 제출 실패", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "제출에 실패했습니다"})
			return
		}

		log.Info("작업허가서 제출 완료", slog.String("id", sub.ID))

		render.JSON(w, r, Response{
			ID:     sub.ID,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
