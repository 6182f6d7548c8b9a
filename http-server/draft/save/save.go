package save

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/jh1234887/safe-work-permit/internal/storage"
)

type DraftSaver interface {
	SaveDraft(ctx context.Context, key string, data []byte) error
}

type Response struct {
	Complete bool   `json:"complete"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// SaveDraft — 입력 변경마다 초안 전체를 덮어쓰기 저장.
// 정규화를 거친 형태로 저장한다 (열람 전 동의는 해제, 가스측정 6행 유지 등).
// 응답의 complete 로 프론트가 다음 버튼 활성화를 판단한다.
func SaveDraft(log *slog.Logger, saver DraftSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.draft.save.SaveDraft"

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

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("본문 읽기 실패", slog.String("error", err.Error()))
			http.Error(w, "잘못된 요청", http.StatusBadRequest)
			return
		}

		draft, complete := storage.DraftForKey(key, body)
		normalized, err := json.Marshal(draft)
		if err != nil {
			log.Error("초안 직렬화 실패", slog.String("error", err.Error()))
			http.Error(w, "잘못된 요청", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveDraft(ctx, key, normalized); err != nil {
			log.Error("초안 저장 실패", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "초안을 저장하지 못했습니다"})
			return
		}

		render.JSON(w, r, Response{
			Complete: complete,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}
