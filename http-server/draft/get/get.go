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

type DraftStore interface {
	LoadDraft(ctx context.Context, key string) ([]byte, error)
}

type ResponseDraft struct {
	Draft    interface{} `json:"draft"`
	Complete bool        `json:"complete"`
	Status   string      `json:"status"`
	Error    string      `json:"error,omitempty"`
}

// GetDraft — 단계별 초안 조회, 저장분이 없으면 기본값 초안을 내려준다
func GetDraft(log *slog.Logger, store DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.draft.get.GetDraft"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		key := chi.URLParam(r, "key")
		if !storage.IsDraftKey(key) {
			log.Error("알 수 없는 초안 키", slog.String("key", key))
			http.Error(w, "unknown draft key", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		raw, err := store.LoadDraft(ctx, key)
		if err != nil {
			log.Error("초안 조회 실패", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseDraft{Error: "초안을 불러오지 못했습니다"})
			return
		}

		draft, complete := storage.DraftForKey(key, raw)

		render.JSON(w, r, ResponseDraft{
			Draft:    draft,
			Complete: complete,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}
