package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/jh1234887/safe-work-permit/internal/storage"
)

type SubmissionReader interface {
	GetSubmissions(ctx context.Context) ([]*storage.Submission, error)
	GetSubmission(ctx context.Context, id string) (*storage.Submission, error)
}

type ResponseList struct {
	Submissions []*storage.Submission `json:"submissions"`
	Status      string                `json:"status"`
	Error       string                `json:"error,omitempty"`
}

type ResponseDetail struct {
	Submission *storage.Submission `json:"submission,omitempty"`
	Status     string              `json:"status"`
	Error      string              `json:"error,omitempty"`
}

// GetSubmissionList — 관리자 목록, 최신순 전체
func GetSubmissionList(log *slog.Logger, reader SubmissionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.submission.get.GetSubmissionList"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		subs, err := reader.GetSubmissions(ctx)
		if err != nil {
			log.Error("제출 목록 조회 실패", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseList{Error: "제출 목록을 불러오지 못했습니다"})
			return
		}

		if subs == nil {
			subs = []*storage.Submission{}
		}

		render.JSON(w, r, ResponseList{
			Submissions: subs,
			Status:      strconv.Itoa(http.StatusOK),
		})
	}
}

// GetSubmissionDetail — 인쇄/상세 화면용 단건 조회
func GetSubmissionDetail(log *slog.Logger, reader SubmissionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.submission.get.GetSubmissionDetail"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		sub, err := reader.GetSubmission(ctx, id)
		if err != nil {
			log.Error("제출건 조회 실패", slog.String("id", id), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseDetail{Error: "제출건을 불러오지 못했습니다"})
			return
		}

		if sub == nil {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, ResponseDetail{Error: "제출 내역을 찾을 수 없습니다."})
			return
		}

		render.JSON(w, r, ResponseDetail{
			Submission: sub,
			Status:     strconv.Itoa(http.StatusOK),
		})
	}
}
