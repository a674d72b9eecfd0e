package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanboard/cms/internal/applynow"
	"github.com/loanboard/cms/internal/auth"
	"github.com/loanboard/cms/internal/category"
	"github.com/loanboard/cms/internal/commodity"
	"github.com/loanboard/cms/internal/db/dbtest"
	"github.com/loanboard/cms/internal/loan"
	"github.com/loanboard/cms/internal/storage"
)

const secret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	bdb := dbtest.Bolt(t)
	loans := loan.NewBoltRepository(bdb)
	cats := category.NewService(category.NewBoltRepository(bdb), loans)

	h := NewRouter(Services{
		ApplyNow:    applynow.NewService(applynow.NewBoltRepository(bdb)),
		Categories:  cats,
		Commodities: commodity.NewService(commodity.NewBoltRepository(bdb)),
		Loans:       loan.NewService(loans, cats, storage.NewMemoryStorage("http://blobs.test"), 1<<20),
	}, Options{JWTSecret: secret, Registry: prometheus.NewRegistry()})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	code, body := call(t, srv, http.MethodGet, "/api/admin/categories", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, body["success"])

	code, _ = call(t, srv, http.MethodGet, "/api/admin/categories", "forged", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestEndToEnd(t *testing.T) {
	srv := newTestServer(t)
	token, err := auth.IssueToken(secret, "admin", time.Hour)
	require.NoError(t, err)

	code, body := call(t, srv, http.MethodGet, "/api/apply-now/india", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["isActive"])
	assert.Nil(t, body["description"])

	code, _ = call(t, srv, http.MethodPost, "/api/admin/apply-now/india", token, `{"isActive":false,"description":"Paused"}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = call(t, srv, http.MethodGet, "/api/apply-now/india", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["isActive"])
	assert.Equal(t, "Paused", body["description"])

	code, body = call(t, srv, http.MethodGet, "/api/apply-now", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["isActive"])

	code, body = call(t, srv, http.MethodPost, "/api/admin/categories", token, `{"name":"Personal"}`)
	require.Equal(t, http.StatusCreated, code)
	catID := body["category"].(map[string]interface{})["id"].(string)

	code, _ = call(t, srv, http.MethodPost, "/api/admin/loans", token, `{
		"category":"`+catID+`","loanTitle":"Quick cash","loanCompany":"Acme","bankName":"Acme Bank",
		"loanDescription":"Unsecured","loanQuote":"From 11%","link":"https://acme.example/cash"}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = call(t, srv, http.MethodGet, "/api/categories", "", "")
	require.Equal(t, http.StatusOK, code)
	cats := body["categories"].([]interface{})
	require.Len(t, cats, 1)
	assert.Equal(t, float64(1), cats[0].(map[string]interface{})["loanCount"])

	code, body = call(t, srv, http.MethodDelete, "/api/admin/categories/"+catID, token, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["message"], "1 loan(s)")

	code, body = call(t, srv, http.MethodGet, "/api/loans/category/"+catID, "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, _ = call(t, srv, http.MethodPost, "/api/admin/commodity-prices", token,
		`{"commodityType":"LP Gas","state":"Goa","city":"Panaji","price":903.5,"unit":"per cylinder"}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = call(t, srv, http.MethodGet, "/api/commodity-prices/type/LP%20Gas", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "LP Gas", body["commodityType"])
	assert.Equal(t, float64(1), body["count"])

	code, body = call(t, srv, http.MethodGet, "/api/nothing-here", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	code, body := call(t, srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "http_requests_total")
}
