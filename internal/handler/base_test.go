package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arkanhaq/contenthub/internal/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestHandleBindsPathParam(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "")
	c.SetPath("/things/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")

	var got int64
	fn := Handle(func(c echo.Context, req *idRequest) (map[string]any, error) {
		got = req.ID
		return map[string]any{"id": req.ID}, nil
	}, http.StatusOK)

	require.NoError(t, fn(c))
	assert.Equal(t, int64(7), got)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestHandleRejectsInvalidPathParam(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "")
	c.SetPath("/things/:id")
	c.SetParamNames("id")
	c.SetParamValues("0")

	called := false
	fn := Handle(func(c echo.Context, req *idRequest) (map[string]any, error) {
		called = true
		return nil, nil
	}, http.StatusOK)

	err := fn(c)
	require.Error(t, err)
	assert.False(t, called)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestHandleCapturesOpenPayload(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, `{"title":"Hi","coverImage":null,"published":true}`)

	var got map[string]any
	fn := Handle(func(c echo.Context, req *createRequest) (map[string]any, error) {
		got = req.Fields
		return req.Fields, nil
	}, http.StatusCreated)

	require.NoError(t, fn(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Hi", got["title"])
	assert.Equal(t, true, got["published"])

	// Explicit null survives as a present key with a nil value.
	v, present := got["coverImage"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestHandleMalformedPayload(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPost, `{"title":`)

	fn := Handle(func(c echo.Context, req *createRequest) (map[string]any, error) {
		return nil, nil
	}, http.StatusCreated)

	err := fn(c)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestHandleUpdateMergesParamAndBody(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPut, `{"name":"Ana"}`)
	c.SetPath("/things/:id")
	c.SetParamNames("id")
	c.SetParamValues("3")

	var gotID int64
	var gotFields map[string]any
	fn := Handle(func(c echo.Context, req *updateRequest) (map[string]any, error) {
		gotID = req.ID
		gotFields = req.Fields
		return nil, nil
	}, http.StatusOK)

	require.NoError(t, fn(c))
	assert.Equal(t, int64(3), gotID)
	assert.Equal(t, map[string]any{"name": "Ana"}, gotFields)
}
