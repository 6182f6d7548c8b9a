package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	adminlogin "github.com/jh1234887/safe-work-permit/http-server/admin/login"
	getdraft "github.com/jh1234887/safe-work-permit/http-server/draft/get"
	savedraft "github.com/jh1234887/safe-work-permit/http-server/draft/save"
	genexcel "github.com/jh1234887/safe-work-permit/http-server/generate-report/generate-excel"
	delsubmission "github.com/jh1234887/safe-work-permit/http-server/submission/delete"
	getsubmission "github.com/jh1234887/safe-work-permit/http-server/submission/get"
	submithandler "github.com/jh1234887/safe-work-permit/http-server/submission/submit"
	"github.com/jh1234887/safe-work-permit/internal/config"
	generate_excel "github.com/jh1234887/safe-work-permit/internal/service/generate-excel"
	submitservice "github.com/jh1234887/safe-work-permit/internal/service/submit"
	"github.com/jh1234887/safe-work-permit/internal/middleware/auth"
	"github.com/jh1234887/safe-work-permit/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, submitSvc *submitservice.Service, genService *generate_excel.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// 단계별 초안 — 키는 permit-step1/2/3
	router.Get("/api/draft/{key}", getdraft.GetDraft(log, storage))
	router.Put("/api/draft/{key}", savedraft.SaveDraft(log, storage))

	// 3단계 완료 → 제출
	router.Post("/api/submissions", submithandler.SubmitPermit(log, submitSvc))

	// 관리자 모드 비밀번호 확인
	router.Post("/api/admin/login", adminlogin.AdminLogin(log, cfg.AdminPass))

	// 관리자 전용 — 목록/상세/삭제/엑셀
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/submissions", getsubmission.GetSubmissionList(log, storage))
	adminRouter.Get("/submissions/{id}", getsubmission.GetSubmissionDetail(log, storage))
	adminRouter.Delete("/submissions/{id}", delsubmission.DeleteSubmission(log, storage))
	adminRouter.Get("/report/excel", genexcel.GenerateReportExcel(log, genService))

	router.Mount("/api/admin", adminRouter)

	// 프론트 정적 파일
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Error("프론트엔드 폴더가 없습니다", "path", frontendDir)
		os.Exit(1)
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// 2단계 안전작업허가 기준 문서
	router.Get("/safety-work-permit-standard.pdf", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, cfg.StandardPDF)
	})

	// SPA fallback: 실제 파일이 있으면 파일, 아니면 index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
