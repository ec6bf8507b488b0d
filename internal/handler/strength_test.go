package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passguard/passguard-go/internal/model"
	"github.com/passguard/passguard-go/internal/service"
	"github.com/passguard/passguard-go/internal/strength"
)

func newTestHandler() *StrengthHandler {
	evaluator := strength.NewEvaluator(strength.DefaultCommonPasswords())
	return NewStrengthHandler(service.NewStrengthService(evaluator))
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func TestHandleEvaluate(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleEvaluate, `{"password":"Kj9#mN2$pL"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var a strength.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, 5, a.Score)
	assert.Equal(t, strength.TierStrong, a.Strength)
	assert.False(t, a.IsCommon)
}

func TestHandleEvaluateCommonPassword(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleEvaluate, `{"password":"123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var a strength.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.True(t, a.IsCommon)
	assert.Equal(t, strength.TierWeak, a.Strength)
}

func TestHandleEvaluateEmptyBody(t *testing.T) {
	h := newTestHandler()

	// An absent body assesses the empty password.
	rec := postJSON(t, h.HandleEvaluate, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var a strength.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, 0, a.Score)
}

func TestHandleEvaluateInvalidBody(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleEvaluate, `{"password":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEvaluateBodyTooLarge(t *testing.T) {
	h := newTestHandler()

	body := `{"password":"` + strings.Repeat("a", 2<<20) + `"}`
	rec := postJSON(t, h.HandleEvaluate, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleGenerate(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGenerate, `{"length":12,"excludeSimilar":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 12)
	assert.Equal(t, strength.MaxScore, resp.Assessment.Score)
	assert.Equal(t, strength.TierStrong, resp.Assessment.Strength)
	assert.False(t, strings.ContainsAny(resp.Password, "O0I1li"))
}

func TestHandleGenerateDefaults(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGenerate, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 16)
}

func TestHandleGenerateInvalidPolicy(t *testing.T) {
	h := newTestHandler()

	for _, body := range []string{`{"length":7}`, `{"length":51}`} {
		rec := postJSON(t, h.HandleGenerate, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)

		var errResp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.NotEmpty(t, errResp["error"])
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusTeapot, map[string]int{"n": 1})

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte(`"n":1`)))
}
