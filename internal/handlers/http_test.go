package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/core"
	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/core/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubLLM struct {
	calls    int
	system   string
	user     string
	response string
	err      error
}

func (s *stubLLM) Complete(ctx context.Context, system, user string) (string, error) {
	s.calls++
	s.system, s.user = system, user
	return s.response, s.err
}

func serve(t *testing.T, llm *stubLLM, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(NewHTTPHandler(core.NewDiscoveryService(llm)))

	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandleDiscover_Success(t *testing.T) {
	llm := &stubLLM{response: "STUB_REPORT"}

	w := serve(t, llm, http.MethodPost, "/discover/", `{"prompt": "influenza", "mode": "vaccine"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mode": "vaccine", "report": "STUB_REPORT"}`, w.Body.String())
	assert.Equal(t, `Create a new vaccine to fight: "influenza"`, llm.user)
	assert.Equal(t, core.SystemInstruction, llm.system)
	assert.Equal(t, 1, llm.calls)
}

func TestHandleDiscover_UpstreamError(t *testing.T) {
	llm := &stubLLM{err: errors.New("timeout")}

	w := serve(t, llm, http.MethodPost, "/discover/", `{"prompt": "influenza", "mode": "vaccine"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body domain.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Detail, "timeout")
}

func TestHandleDiscover_InvalidInput(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "missing prompt", body: `{"mode": "drug"}`},
		{name: "missing mode", body: `{"prompt": "influenza"}`},
		{name: "null prompt", body: `{"prompt": null, "mode": "drug"}`},
		{name: "mistyped prompt", body: `{"prompt": 42, "mode": "drug"}`},
		{name: "mistyped mode", body: `{"prompt": "influenza", "mode": ["drug"]}`},
		{name: "not json", body: `prompt=influenza`},
		{name: "empty body", body: ``},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &stubLLM{response: "should not be used"}

			w := serve(t, llm, http.MethodPost, "/discover/", tc.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Zero(t, llm.calls, "completion client must not be called")

			var body domain.ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Detail)
		})
	}
}

func TestHandleDiscover_EmptyFields(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		mode     string
		expected string
	}{
		{
			name:     "empty prompt",
			body:     `{"prompt": "", "mode": "drug"}`,
			mode:     "drug",
			expected: `Create a new drug to fight: ""`,
		},
		{
			name:     "empty mode",
			body:     `{"prompt": "flu", "mode": ""}`,
			mode:     "",
			expected: `Create a new  to fight: "flu"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &stubLLM{response: "STUB_REPORT"}

			w := serve(t, llm, http.MethodPost, "/discover/", tc.body)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, 1, llm.calls)
			assert.Equal(t, tc.expected, llm.user)

			var resp domain.DiscoveryResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, domain.DiscoveryResponse{Mode: tc.mode, Report: "STUB_REPORT"}, resp)
		})
	}
}

func TestHandleDiscover_BodyTooLarge(t *testing.T) {
	llm := &stubLLM{}
	body := `{"mode": "drug", "prompt": "` + strings.Repeat("x", maxBodyBytes) + `"}`

	w := serve(t, llm, http.MethodPost, "/discover/", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, llm.calls)
}

func TestHandleDiscover_MethodNotAllowed(t *testing.T) {
	w := serve(t, &stubLLM{}, http.MethodGet, "/discover/", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleHealth(t *testing.T) {
	w := serve(t, &stubLLM{}, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	router := NewRouter(NewHTTPHandler(core.NewDiscoveryService(&stubLLM{})))

	r := httptest.NewRequest(http.MethodOptions, "/discover/", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	r.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
