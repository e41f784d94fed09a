package server

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/thereayou/blabla/internal/database"
	"github.com/thereayou/blabla/internal/handlers"
	"github.com/thereayou/blabla/internal/services"
	"github.com/thereayou/blabla/internal/uploads"
	"github.com/thereayou/blabla/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Uploads    *uploads.Store
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	// срок жизни токена фиксированный: час от выдачи
	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		time.Hour,
	)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	uploadStore := uploads.NewStore(uploadDir)
	if err := uploadStore.EnsureDir(); err != nil {
		log.Fatalf("cannot create upload dir: %v", err)
	}

	svc := services.NewAuthService(dbConn, auth.NewPasswordHasher(), jwtMgr)
	authH := handlers.NewAuthHandler(svc)
	userH := handlers.NewUserHandler(svc, uploadStore)

	router := gin.Default()
	APIEndpoints(router, authH, userH, jwtMgr, rdb, uploadStore.Dir())

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Uploads:    uploadStore,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
