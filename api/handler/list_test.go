package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/shoplist/backend/api/transport"
	"github.com/shoplist/backend/store"
)

func newListHandler() (*ListHandler, *store.Store) {
	s := store.New(nil, zap.NewNop())
	return NewListHandler(s, nil, zap.NewNop()), s
}

func postCtx(body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetBody([]byte(body))
	return ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) transport.Envelope {
	t.Helper()
	var env transport.Envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env))
	return env
}

func TestCreateList(t *testing.T) {
	h, s := newListHandler()

	ctx := postCtx(`{"name":"Groceries"}`)
	h.CreateList(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", env.Status)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Groceries", data["name"])
	assert.NotEmpty(t, data["id"])

	require.Len(t, s.Lists(), 1)
}

func TestCreateList_BlankNameRejected(t *testing.T) {
	h, s := newListHandler()

	ctx := postCtx(`{"name":"   "}`)
	h.CreateList(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "INVALID", env.Code)
	assert.Empty(t, s.Lists())
}

func TestCreateList_MalformedBody(t *testing.T) {
	h, _ := newListHandler()

	ctx := postCtx(`{not json`)
	h.CreateList(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestGetList_NotFound(t *testing.T) {
	h, _ := newListHandler()

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "missing")
	h.GetList(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestRenameList_UnknownIDIsNoOpSuccess(t *testing.T) {
	h, _ := newListHandler()

	ctx := postCtx(`{"name":"Renamed"}`)
	ctx.SetUserValue("id", "missing")
	h.RenameList(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", env.Status)
}

func TestCurrentListFlow(t *testing.T) {
	h, s := newListHandler()
	id := s.CreateList("Groceries")

	// nothing selected yet
	ctx := &fasthttp.RequestCtx{}
	h.GetCurrentList(ctx)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())

	// select, then read back
	ctx = postCtx(`{"id":"` + id + `"}`)
	h.SetCurrentList(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	ctx = &fasthttp.RequestCtx{}
	h.GetCurrentList(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Groceries", data["name"])

	// null id clears the selection
	ctx = postCtx(`{"id":null}`)
	h.SetCurrentList(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	ctx = &fasthttp.RequestCtx{}
	h.GetCurrentList(ctx)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestGetListTotal(t *testing.T) {
	h, s := newListHandler()
	id := s.CreateList("Groceries")
	qty, price := 2.0, 1.5
	s.AddProduct(id, productInput("Milk", &qty, &price))

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", id)
	h.GetListTotal(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 3.0, data["total"], 1e-9)
	assert.Equal(t, "$3.00", data["formatted"])
}

func TestShareList_NotFound(t *testing.T) {
	h, _ := newListHandler()

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "missing")
	h.ShareList(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}
