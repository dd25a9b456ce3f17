package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/shoplist/backend/api/handler"
)

type Handlers struct {
	List     *apiHandler.ListHandler
	Product  *apiHandler.ProductHandler
	Currency *apiHandler.CurrencyHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Lists
	r.GET("/api/v1/lists", handlers.List.GetLists)
	r.POST("/api/v1/lists", handlers.List.CreateList)
	r.GET("/api/v1/lists/{id}", handlers.List.GetList)
	r.PUT("/api/v1/lists/{id}", handlers.List.RenameList)
	r.DELETE("/api/v1/lists/{id}", handlers.List.DeleteList)
	r.GET("/api/v1/lists/{id}/total", handlers.List.GetListTotal)
	r.GET("/api/v1/lists/{id}/share", handlers.List.ShareList)

	// Current list selection
	r.GET("/api/v1/current-list", handlers.List.GetCurrentList)
	r.PUT("/api/v1/current-list", handlers.List.SetCurrentList)

	// Products
	r.POST("/api/v1/lists/{id}/products", handlers.Product.AddProduct)
	r.PATCH("/api/v1/lists/{id}/products/{productId}", handlers.Product.UpdateProduct)
	r.DELETE("/api/v1/lists/{id}/products/{productId}", handlers.Product.DeleteProduct)

	// Currencies
	r.GET("/api/v1/currencies", handlers.Currency.GetCurrencies)
	r.PUT("/api/v1/currencies/selected", handlers.Currency.SetCurrency)

	return r
}
