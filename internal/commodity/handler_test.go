package commodity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := newService(t)
	admin := NewHandler(svc)
	public := NewPublicHandler(svc)

	r := chi.NewRouter()
	r.Route("/admin/commodity-prices", func(r chi.Router) {
		r.Get("/", admin.List)
		r.Post("/", admin.Create)
		r.Get("/{id}", admin.Get)
		r.Put("/{id}", admin.Update)
		r.Delete("/{id}", admin.Delete)
	})
	r.Route("/commodity-prices", func(r chi.Router) {
		r.Get("/", public.List)
		r.Get("/grouped", public.Grouped)
		r.Get("/type/{commodityType}", public.ByType)
		r.Get("/{id}", public.Get)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return rr.Code, out
}

func TestCommodityPriceEndpoints(t *testing.T) {
	h := newRouter(t)

	code, body := do(t, h, http.MethodPost, "/admin/commodity-prices",
		`{"commodityType":"Petrol","state":"Delhi","city":"New Delhi","price":96.72,"unit":"per litre"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, MsgCreated, body["message"])
	id := body["commodityPrice"].(map[string]interface{})["id"].(string)

	code, body = do(t, h, http.MethodPost, "/admin/commodity-prices",
		`{"commodityType":"Petrol","state":"delhi","city":"new delhi","price":90}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, MsgDuplicate, body["message"])

	code, _ = do(t, h, http.MethodPost, "/admin/commodity-prices", `{"commodityType":`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodPost, "/admin/commodity-prices",
		`{"commodityType":"Silver","state":"Delhi","city":"New Delhi","price":74.5,"isActive":false}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = do(t, h, http.MethodGet, "/admin/commodity-prices?isActive=false", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, _ = do(t, h, http.MethodGet, "/admin/commodity-prices?commodityType=Gold", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, h, http.MethodGet, "/commodity-prices", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, body = do(t, h, http.MethodGet, "/commodity-prices/type/"+url.PathEscape("Petrol")+"?state=del", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Petrol", body["commodityType"])
	assert.Equal(t, float64(1), body["count"])

	code, _ = do(t, h, http.MethodGet, "/commodity-prices/type/Gold", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, h, http.MethodGet, "/commodity-prices/grouped", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(1), body["statesCount"])
	assert.Len(t, body["data"], 1)

	code, body = do(t, h, http.MethodPut, "/admin/commodity-prices/"+id, `{"price":97.5}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, MsgUpdated, body["message"])
	assert.Equal(t, 97.5, body["commodityPrice"].(map[string]interface{})["price"])

	code, _ = do(t, h, http.MethodGet, "/commodity-prices/"+id, "")
	assert.Equal(t, http.StatusOK, code)

	code, body = do(t, h, http.MethodDelete, "/admin/commodity-prices/"+id, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, MsgDeleted, body["message"])

	code, body = do(t, h, http.MethodGet, "/admin/commodity-prices/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, MsgNotFound, body["message"])
}
