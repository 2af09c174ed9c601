package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/mail"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/moderation"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/notification"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/repository"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/repository/redis"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/workers"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/usecase/article"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/usecase/comment"
	"github.com/joho/godotenv"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	if err := rest.RegisterValidations(); err != nil {
		log.Fatal("failed to register custom validations:", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	articleRepo := mysqlRepo.NewArticleRepository(db)

	// Comment相关的三层架构
	// 1. DB层
	commentDBRepo := mysqlRepo.NewCommentRepository(db)
	// 2. Cache层
	commentCache := myRedisCache.NewCommentCache(client)
	// 3. Repository协调层
	commentRepo := repository.NewCommentRepository(commentDBRepo, commentCache)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Prepare notification pipeline
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_FROM"),
	})
	dispatcher := notification.NewDispatcher(commentRepo, articleRepo, userRepo, mailer, os.Getenv("SITE_BASE_URL"))

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifyWorker := workers.NewNotifyWorker(dispatcher)
	go notifyWorker.Start(ctx)

	// Build service Layer
	jwtSecret := os.Getenv("JWT_SECRET")

	articleSvc := article.NewService(articleRepo, userRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, moderation.NewModeratorFromEnv(), notifyWorker)
	commentHandler := rest.NewCommentHandler(commentSvc, articleSvc)

	authMiddleware := middleware.AuthMiddleware(jwtSecret)

	// Prepare bloom filter
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.GET("/articles/:id/comments", commentHandler.FetchCommentsByArticle)
	route.GET("/comments/:id", commentHandler.GetCommentByID)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/articles/:id/comments", commentHandler.CreateComment)
		authorized.PATCH("/comments/:id", commentHandler.UpdateComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
