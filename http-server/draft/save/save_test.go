package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jh1234887/safe-work-permit/internal/storage"
)

type MockDraftSaver struct {
	mock.Mock
}

func (m *MockDraftSaver) SaveDraft(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func newRouter(saver DraftSaver) *chi.Mux {
	router := chi.NewRouter()
	router.Put("/api/draft/{key}", SaveDraft(slog.Default(), saver))
	return router
}

func TestSaveDraft_Step1Complete(t *testing.T) {
	mockSaver := new(MockDraftSaver)

	var saved []byte
	mockSaver.On("SaveDraft", mock.Anything, storage.DraftKeyStep1, mock.MatchedBy(func(data []byte) bool {
		saved = data
		return true
	})).Return(nil)

	body := `{"companyName":"Acme","name":"Kim","position":"Engineer","contact":"010-0000-0000"}`
	req := httptest.NewRequest(http.MethodPut, "/api/draft/permit-step1", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newRouter(mockSaver).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Complete)
	assert.JSONEq(t, body, string(saved))
}

func TestSaveDraft_Step1Incomplete(t *testing.T) {
	mockSaver := new(MockDraftSaver)
	mockSaver.On("SaveDraft", mock.Anything, storage.DraftKeyStep1, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/draft/permit-step1",
		strings.NewReader(`{"companyName":" ","name":"Kim","position":"Engineer","contact":"010-0000-0000"}`))
	rr := httptest.NewRecorder()
	newRouter(mockSaver).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Complete)
}

// 열람 전 동의 시도는 저장 시점에 해제된다
func TestSaveDraft_Step2AgreeWithoutFileOpened(t *testing.T) {
	mockSaver := new(MockDraftSaver)

	var saved []byte
	mockSaver.On("SaveDraft", mock.Anything, storage.DraftKeyStep2, mock.MatchedBy(func(data []byte) bool {
		saved = data
		return true
	})).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/draft/permit-step2",
		strings.NewReader(`{"agreed":true,"name":"Kim","date":"2024-06-01","fileOpened":false}`))
	rr := httptest.NewRecorder()
	newRouter(mockSaver).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Complete)

	var ack storage.Acknowledgment
	require.NoError(t, json.Unmarshal(saved, &ack))
	assert.False(t, ack.Agreed)
}

func TestSaveDraft_UnknownKey(t *testing.T) {
	mockSaver := new(MockDraftSaver)

	req := httptest.NewRequest(http.MethodPut, "/api/draft/whatever", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	newRouter(mockSaver).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockSaver.AssertNotCalled(t, "SaveDraft")
}

func TestSaveDraft_StoreError(t *testing.T) {
	mockSaver := new(MockDraftSaver)
	mockSaver.On("SaveDraft", mock.Anything, storage.DraftKeyStep3, mock.Anything).Return(assert.AnError)

	req := httptest.NewRequest(http.MethodPut, "/api/draft/permit-step3", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	newRouter(mockSaver).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
