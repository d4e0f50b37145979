package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ledger/backend/internal/interfaces/http/handler"
)

// Handlers bundles the handlers mounted under /api/v1
type Handlers struct {
	Transactions *handler.TransactionHandler
	Summary      *handler.SummaryHandler
	Categories   *handler.CategoryHandler
	Activity     *handler.ActivityHandler
}

// LedgerGroups returns the route groups of the ledger API. createGuards run
// only on POST /transactions, typically the idempotency middleware.
func LedgerGroups(h Handlers, createGuards ...gin.HandlerFunc) []*DomainGroup {
	transactions := NewDomainGroup("transactions", "/transactions").
		GET("", h.Transactions.List).
		POST("", append(append([]gin.HandlerFunc{}, createGuards...), h.Transactions.Create)...).
		GET("/:id", h.Transactions.Get).
		PUT("/:id", h.Transactions.Update).
		DELETE("/:id", h.Transactions.Delete)

	summary := NewDomainGroup("summary", "/summary").
		GET("", h.Summary.Get).
		GET("/monthly", h.Summary.Monthly).
		GET("/current", h.Summary.Current).
		GET("/months/:year/:month", h.Summary.Month)

	categories := NewDomainGroup("categories", "/categories").
		GET("", h.Categories.List).
		POST("", h.Categories.Create)

	activity := NewDomainGroup("activity", "/activity").
		GET("", h.Activity.List)

	return []*DomainGroup{transactions, summary, categories, activity}
}

// Mount registers every group on r
func Mount(r *Router, groups []*DomainGroup) {
	for _, g := range groups {
		r.Register(g)
	}
}
