package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/shoplist/backend/domain"
	"github.com/shoplist/backend/store"
)

func newProductHandler() (*ProductHandler, *store.Store) {
	s := store.New(nil, zap.NewNop())
	return NewProductHandler(s, nil, zap.NewNop()), s
}

func productInput(name string, quantity, price *float64) domain.ProductInput {
	return domain.ProductInput{Name: name, Quantity: quantity, Price: price}
}

func TestAddProduct(t *testing.T) {
	h, s := newProductHandler()
	listID := s.CreateList("Groceries")

	ctx := postCtx(`{"name":"Milk","quantity":2,"price":1.5}`)
	ctx.SetUserValue("id", listID)
	h.AddProduct(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Milk", data["name"])
	assert.InDelta(t, 2.0, data["quantity"], 1e-9)
	assert.Equal(t, false, data["purchased"])
}

func TestAddProduct_DefaultsWhenFieldsAbsent(t *testing.T) {
	h, s := newProductHandler()
	listID := s.CreateList("Groceries")

	ctx := postCtx(`{"name":"Milk"}`)
	ctx.SetUserValue("id", listID)
	h.AddProduct(ctx)

	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	list, _ := s.List(listID)
	require.Len(t, list.Products, 1)
	assert.Equal(t, 1.0, list.Products[0].Quantity)
	assert.Equal(t, 0.0, list.Products[0].Price)
}

func TestAddProduct_UnknownListNotFound(t *testing.T) {
	h, _ := newProductHandler()

	ctx := postCtx(`{"name":"Milk"}`)
	ctx.SetUserValue("id", "missing")
	h.AddProduct(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestUpdateProduct_MissingProductIsNoOpSuccess(t *testing.T) {
	h, s := newProductHandler()
	listID := s.CreateList("Groceries")
	qty, price := 2.0, 1.5
	s.AddProduct(listID, productInput("Milk", &qty, &price))
	before := s.Lists()

	ctx := postCtx(`{"purchased":true}`)
	ctx.SetUserValue("id", listID)
	ctx.SetUserValue("productId", "missing")
	h.UpdateProduct(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, before, s.Lists())
}

func TestUpdateProduct_MarksPurchased(t *testing.T) {
	h, s := newProductHandler()
	listID := s.CreateList("Groceries")
	p, _ := s.AddProduct(listID, productInput("Milk", nil, nil))

	ctx := postCtx(`{"purchased":true}`)
	ctx.SetUserValue("id", listID)
	ctx.SetUserValue("productId", p.ID)
	h.UpdateProduct(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	list, _ := s.List(listID)
	assert.True(t, list.Products[0].Purchased)
}

func TestDeleteProduct(t *testing.T) {
	h, s := newProductHandler()
	listID := s.CreateList("Groceries")
	p, _ := s.AddProduct(listID, productInput("Milk", nil, nil))

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", listID)
	ctx.SetUserValue("productId", p.ID)
	h.DeleteProduct(ctx)

	assert.Equal(t, http.StatusNoContent, ctx.Response.StatusCode())
	list, _ := s.List(listID)
	assert.Empty(t, list.Products)
}
