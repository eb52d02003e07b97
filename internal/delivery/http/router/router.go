// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/router/handler"
	"vitrina/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	BusinessHandler *handler.BusinessHandler
	ListingHandler  *handler.ListingHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	businessHandler *handler.BusinessHandler
	listingHandler  *handler.ListingHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		businessHandler: params.BusinessHandler,
		listingHandler:  params.ListingHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	publisherOnly := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleMerchant)

	// Account routes
	accounts := e.Group("/accounts")
	{
		accounts.POST("", r.accountHandler.Register)
		accounts.POST("/login", r.accountHandler.Login)
		accounts.GET("/offers/:city", r.accountHandler.OffersAudience)

		accounts.GET("", r.accountHandler.List, auth)
		accounts.GET("/check/admin", r.accountHandler.CheckAdmin, auth)
		accounts.GET("/check/merchant", r.accountHandler.CheckMerchant, auth)
		accounts.GET("/:id", r.accountHandler.Get, auth)
		accounts.PUT("/:id", r.accountHandler.Update, auth)
		accounts.DELETE("/:id", r.accountHandler.Delete, auth)
	}

	// Business routes: reads are public, writes are admin-only
	businesses := e.Group("/businesses")
	{
		businesses.GET("", r.businessHandler.List)
		businesses.GET("/sort/tax", r.businessHandler.ListByTaxID)
		businesses.GET("/tax/:taxId", r.businessHandler.GetByTaxID)
		businesses.GET("/:id", r.businessHandler.Get)

		businesses.POST("", r.businessHandler.Create, auth, adminOnly)
		businesses.PUT("/tax/:taxId", r.businessHandler.UpdateByTaxID, auth, adminOnly)
		businesses.DELETE("/tax/:taxId", r.businessHandler.DeleteByTaxID, auth, adminOnly)
		businesses.PUT("/:id", r.businessHandler.Update, auth, adminOnly)
		businesses.DELETE("/:id", r.businessHandler.Delete, auth, adminOnly)
	}

	// Listing routes: the public directory plus gated lifecycle operations
	listings := e.Group("/listings")
	{
		listings.GET("", r.listingHandler.List)
		listings.GET("/activity/:activity", r.listingHandler.ListByActivity)
		listings.GET("/merchant/:ownerId", r.listingHandler.ListByOwner)
		listings.GET("/sort/score/:order", r.listingHandler.ListByScore)
		listings.GET("/:id", r.listingHandler.Get)
		listings.GET("/:id/qr", r.listingHandler.QRCode)

		listings.POST("", r.listingHandler.Create, auth, publisherOnly)
		listings.PUT("/:id", r.listingHandler.Update, auth)
		listings.POST("/:id/reviews", r.listingHandler.SubmitReview, auth)
		listings.PATCH("/:id/archive", r.listingHandler.Archive, auth, publisherOnly)
		listings.DELETE("/:id", r.listingHandler.Delete, auth, adminOnly)
	}
}
