package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/config"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/api/handler"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/api/middleware"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/jwt"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/redis"
)

// Setup builds the gin engine. rdb may be nil.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	var revoked middleware.RevocationChecker
	if rdb != nil {
		revoked = rdb
	}
	authn := middleware.JWTAuth(jwtMgr, revoked)
	admin := middleware.RoleAuth(model.RoleAdmin, model.RoleSuperAdmin)
	superAdmin := middleware.RoleAuth(model.RoleSuperAdmin)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Health)

		// auth
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
			auth.POST("/logout", authn, h.Auth.Logout)
			auth.GET("/me", authn, h.Auth.GetCurrentUser)
			auth.PUT("/password", authn, h.Auth.ChangePassword)
		}

		// saints: public reads, admin writes
		saints := v1.Group("/saints")
		{
			saints.GET("", h.Saint.ListSaints)
			saints.GET("/:id", h.Saint.GetSaint)
			saints.GET("/:id/calendar.ics", h.Saint.GetCalendar)
			saints.POST("", authn, admin, h.Saint.CreateSaint)
			saints.PUT("/:id", authn, admin, h.Saint.UpdateSaint)
			saints.DELETE("/:id", authn, admin, h.Saint.DeactivateSaint)
		}

		locations := v1.Group("/locations")
		{
			locations.GET("", h.Location.ListLocations)
			locations.GET("/:id", h.Location.GetLocation)
			locations.POST("", authn, admin, h.Location.CreateLocation)
			locations.PUT("/:id", authn, admin, h.Location.UpdateLocation)
			locations.DELETE("/:id", authn, admin, h.Location.DeleteLocation)
		}

		schedules := v1.Group("/schedules")
		{
			schedules.GET("", h.Schedule.ListSchedules)
			schedules.GET("/current", h.Schedule.ListCurrent)
			schedules.GET("/upcoming", h.Schedule.ListUpcoming)
			schedules.GET("/overlap", authn, admin, h.Schedule.CheckOverlap)
			schedules.GET("/export", authn, admin, h.Export.ExportSchedules)
			schedules.GET("/:id", h.Schedule.GetSchedule)
			schedules.POST("", authn, admin, h.Schedule.CreateSchedule)
			schedules.PUT("/:id", authn, admin, h.Schedule.UpdateSchedule)
			schedules.DELETE("/:id", authn, admin, h.Schedule.DeleteSchedule)
		}

		v1.GET("/activity-logs", authn, admin, h.ActivityLog.ListActivityLogs)
		v1.GET("/dashboard/stats", authn, admin, h.Dashboard.GetStats)

		adminUsers := v1.Group("/admin-users", authn, superAdmin)
		{
			adminUsers.GET("", h.AdminUser.ListAdminUsers)
			adminUsers.POST("", h.AdminUser.CreateAdminUser)
			adminUsers.PUT("/:id", h.AdminUser.UpdateAdminUser)
			adminUsers.POST("/:id/reset-password", h.AdminUser.ResetPassword)
		}
	}

	return r
}
