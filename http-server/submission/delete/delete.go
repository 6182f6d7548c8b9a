package del

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type SubmissionDeleter interface {
	DeleteSubmission(ctx context.Context, id string) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// DeleteSubmission — 이미 지워진 id 여도 성공으로 응답 (no-op)
func DeleteSubmission(log *slog.Logger, deleter SubmissionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.submission.delete.DeleteSubmission"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteSubmission(ctx, id); err != nil {
			log.Error("제출건 삭제 실패", slog.String("id", id), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "삭제하지 못했습니다"})
			return
		}

		log.Info("제출건 삭제", slog.String("id", id))

		render.JSON(w, r, Response{
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
