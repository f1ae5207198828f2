package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/api/middleware"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/response"
)

// MustGetUserID extracts the admin id set by JWTAuth. On failure it writes a
// 401 and returns false; callers should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, middleware.CtxUserID)
}

// MustGetRole extracts the admin role set by JWTAuth.
func MustGetRole(c *gin.Context) (string, bool) {
	return mustGetString(c, middleware.CtxRole)
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	s := c.GetString(key)
	if s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// GetTokenID returns the access token's jti and expiry, if present.
func GetTokenID(c *gin.Context) (string, time.Time) {
	return c.GetString(middleware.CtxTokenJTI), c.GetTime(middleware.CtxTokenExp)
}

// actorOf identity recorded in the activity log for this request.
func actorOf(c *gin.Context) service.Actor {
	return service.AdminActor(c.GetString(middleware.CtxUserID), c.ClientIP())
}

// pathID reads a uuid path parameter. Malformed ids are rejected with 400
// before reaching the database.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		response.ValidationFailed(c, name+" must be a valid UUID")
		return "", false
	}
	return id, true
}
