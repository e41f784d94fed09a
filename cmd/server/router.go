package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/thereayou/blabla/internal/handlers"
	"github.com/thereayou/blabla/internal/middleware"
	"github.com/thereayou/blabla/pkg/auth"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, userH *handlers.UserHandler,
	jwtMgr *auth.JWTManager, rdb *redis.Client, uploadDir string) {

	// загруженные картинки профиля
	r.Static("/uploads", uploadDir)

	api := r.Group("/api/auth")
	{
		api.POST("/signup", authH.Signup)
		api.POST("/login", middleware.LoginRateLimit(rdb, 10, time.Minute), authH.Login)

		profile := api.Group("")
		profile.Use(middleware.AuthMiddleware(jwtMgr))
		{
			profile.GET("/profile", userH.GetProfile)
			profile.PUT("/profile", userH.UpdateProfile)
			profile.POST("/profile/picture", userH.UploadProfilePicture)
		}
	}
}
