package login

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Request struct {
	Password string `json:"password"`
}

type Response struct {
	Ok     bool   `json:"ok"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// AdminLogin — 관리자 모드 진입용 비밀번호 확인.
// 화면 접근 제어일 뿐 보안경계가 아니다. 잠금/횟수 제한 없음.
func AdminLogin(log *slog.Logger, adminPass string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.login.AdminLogin"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("잘못된 JSON", slog.String("error", err.Error()))
			http.Error(w, "잘못된 요청", http.StatusBadRequest)
			return
		}

		if req.Password != adminPass {
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, Response{Error: "비밀번호가 올바르지 않습니다."})
			return
		}

		render.JSON(w, r, Response{
			Ok:     true,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
