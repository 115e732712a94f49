package api

import (
	"context"
	"net/http"

	"loyalty-server/internal/authz"
	loyaltyHandler "loyalty-server/internal/loyalty/handler"
	orderHandler "loyalty-server/internal/orders/handler"
	profileHandler "loyalty-server/internal/profiles/handler"
	referralHandler "loyalty-server/internal/referral/handler"
	rewardHandler "loyalty-server/internal/rewards/handler"
	settingsHandler "loyalty-server/internal/settings/handler"
	"loyalty-server/internal/ratelimit"
	"loyalty-server/internal/store"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the database is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	router          *gin.RouterGroup
	auth            *authz.Middleware
	limiter         *ratelimit.Service
	health          HealthChecker
	profileHandler  profileHandler.Handler
	loyaltyHandler  loyaltyHandler.Handler
	referralHandler referralHandler.Handler
	rewardHandler   rewardHandler.Handler
	orderHandler    orderHandler.Handler
	settingsHandler settingsHandler.Handler
}

// Handlers groups the HTTP handlers mounted under /api
type Handlers struct {
	Profiles  profileHandler.Handler
	Loyalty   loyaltyHandler.Handler
	Referrals referralHandler.Handler
	Rewards   rewardHandler.Handler
	Orders    orderHandler.Handler
	Settings  settingsHandler.Handler
}

func New(router *gin.RouterGroup, auth *authz.Middleware, limiter *ratelimit.Service, health HealthChecker, handlers Handlers) API {
	return API{
		router:          router,
		auth:            auth,
		limiter:         limiter,
		health:          health,
		profileHandler:  handlers.Profiles,
		loyaltyHandler:  handlers.Loyalty,
		referralHandler: handlers.Referrals,
		rewardHandler:   handlers.Rewards,
		orderHandler:    handlers.Orders,
		settingsHandler: handlers.Settings,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	apiGroup := a.router.Group("/api", a.auth.Authenticate, a.limiter.Middleware())

	profilesGroup := apiGroup.Group("/profiles")
	{
		profilesGroup.POST("", a.profileHandler.HandleCreateProfile)
		profilesGroup.GET("/me", a.profileHandler.HandleGetMe)
		profilesGroup.PATCH("/me", a.profileHandler.HandleUpdateMe)
		profilesGroup.GET("/me/stats", a.profileHandler.HandleGetMyStats)
		profilesGroup.GET("/me/referrals", a.referralHandler.HandleListReferrals)
		profilesGroup.GET("/me/referral-link", a.referralHandler.HandleGetReferralLink)
	}

	customersGroup := apiGroup.Group("/customers/:customer_id")
	{
		customersGroup.GET("/stats", a.profileHandler.HandleGetCustomerStats)
		customersGroup.GET("/visits", a.loyaltyHandler.HandleListVisits)
		customersGroup.GET("/rewards", a.rewardHandler.HandleListRewards)
		customersGroup.GET("/rewards/available", a.rewardHandler.HandleListAvailable)
		customersGroup.GET("/orders", a.orderHandler.HandleListCustomerOrders)
	}

	rewardsGroup := apiGroup.Group("/rewards/:reward_id")
	{
		rewardsGroup.GET("", a.rewardHandler.HandleGetReward)
		rewardsGroup.POST("/preview", a.rewardHandler.HandlePreview)
		rewardsGroup.POST("/redeem", authz.RequireRole(store.RoleStaff, store.RoleAdmin), a.rewardHandler.HandleRedeem)
	}

	ordersGroup := apiGroup.Group("/orders")
	{
		ordersGroup.POST("", a.orderHandler.HandlePlaceOrder)
		ordersGroup.GET("/:order_id", a.orderHandler.HandleGetOrder)
	}

	staffGroup := apiGroup.Group("/staff", authz.RequireRole(store.RoleStaff, store.RoleAdmin))
	{
		staffGroup.POST("/visits", a.loyaltyHandler.HandleRecordVisit)
		staffGroup.GET("/orders", a.orderHandler.HandleListOrders)
		staffGroup.PATCH("/orders/:order_id/status", a.orderHandler.HandleUpdateStatus)
		staffGroup.GET("/profiles", a.profileHandler.HandleListProfiles)
	}

	adminGroup := apiGroup.Group("/admin", authz.RequireRole(store.RoleAdmin))
	{
		adminGroup.GET("/settings", a.settingsHandler.HandleGetSettings)
		adminGroup.PUT("/settings/:key", a.settingsHandler.HandleUpdateSetting)
		adminGroup.DELETE("/settings/:key", a.settingsHandler.HandleResetSetting)
		adminGroup.POST("/profiles/:profile_id/roles", a.profileHandler.HandleAddRole)
		adminGroup.DELETE("/profiles/:profile_id/roles/:role", a.profileHandler.HandleRemoveRole)
		adminGroup.POST("/customers/:customer_id/milestones/evaluate", a.loyaltyHandler.HandleEvaluateMilestone)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		if a.health != nil {
			if err := a.health.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
