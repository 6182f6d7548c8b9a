package login

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin_Success(t *testing.T) {
	handler := AdminLogin(slog.Default(), "23054")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"23054"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Ok)
	assert.Empty(t, resp.Error)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	handler := AdminLogin(slog.Default(), "23054")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"nope"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Ok)
	assert.Equal(t, "비밀번호가 올바르지 않습니다.", resp.Error)
}

func TestAdminLogin_BadJSON(t *testing.T) {
	handler := AdminLogin(slog.Default(), "23054")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
