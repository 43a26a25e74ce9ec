package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bootstrap "anke-go-api/config"
	adminctl "anke-go-api/controllers/admin"
	appctl "anke-go-api/controllers/app"
	"anke-go-api/db"
	"anke-go-api/middleware"
	"anke-go-api/pkg/config"
	"anke-go-api/pkg/monitoring"
	"anke-go-api/redis"
	"anke-go-api/router"
	"anke-go-api/scheduler"
	"anke-go-api/services/admin_service"
	"anke-go-api/services/app_service"
	"anke-go-api/services/cleanup_service"
	"anke-go-api/services/keyword_service"
	"anke-go-api/services/mail_service"
	"anke-go-api/services/moderation_service"
	"anke-go-api/services/notification_service"
	"anke-go-api/services/point_service"
	"anke-go-api/utils"
)

// injected at build time
var (
	Version            = "dev"
	BuildTime          = "unknown"
	GitCommit          = "unknown"
	DefaultServiceName = "anke-go-api"
	DefaultRouterMode  = "all"
	DefaultPort        = "8801"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "-v":
			fmt.Printf("Anke API\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			return
		case "-help", "--help", "-h":
			fmt.Printf("Anke API - survey/consultation platform backend\n\n")
			fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
			fmt.Printf("Options:\n")
			fmt.Printf("  -version, -v     print version information\n")
			fmt.Printf("  -help, -h        print this help\n\n")
			fmt.Printf("Environment Variables:\n")
			fmt.Printf("  SERVICE_NAME     service name (default: %s)\n", DefaultServiceName)
			fmt.Printf("  ROUTER_MODE      router mode: all, app, admin (default: %s)\n", DefaultRouterMode)
			fmt.Printf("  PORT             listen port (default: %s)\n", DefaultPort)
			return
		}
	}

	serviceName := getEnv("SERVICE_NAME", DefaultServiceName)
	routerMode := getEnv("ROUTER_MODE", DefaultRouterMode)
	port := getEnv("PORT", DefaultPort)

	log.Printf("starting %s (mode: %s, port: %s)...", serviceName, routerMode, port)

	redisConfig := bootstrap.LoadConfig()
	if err := redis.InitRedis(redisConfig); err != nil {
		log.Printf("redis unavailable, continuing without it: %v", err)
	}

	config.InitConfig()
	cfg := config.GetConfig()

	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		panic("failed to load timezone: " + err.Error())
	}
	time.Local = loc

	db.Init()
	if err := db.Migrate(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	middleware.RegisterValidators()

	// service wiring
	checker := moderation_service.NewChecker(moderation_service.NewGormWordSource(db.Dao))
	mailSvc := mail_service.NewService(mail_service.NewGormStore(db.Dao), &cfg.Mail)
	notificationSvc := notification_service.NewService(db.Dao, &cfg.AMQP)
	notificationSvc.StartConsumer()
	defer notificationSvc.Close()

	pointStore := point_service.NewGormStore(db.Dao)
	ledgerSvc := point_service.NewLedgerService(pointStore)
	exchangeSvc := point_service.NewExchangeService(pointStore, mailSvc,
		point_service.WithNotifier(notificationSvc))

	authSvc := app_service.NewAuthService(db.Dao)
	postSvc := app_service.NewPostService(db.Dao, checker)
	commentSvc := app_service.NewCommentService(db.Dao, checker, notificationSvc)
	favoriteSvc := app_service.NewFavoriteService(db.Dao)

	cleanupScanner := cleanup_service.NewScanner(cleanup_service.NewGormStore(db.Dao))
	keywordLinker := keyword_service.NewLinker(keyword_service.NewGormStore(db.Dao))

	storageUtil, err := utils.NewStorageUtil(cfg.Storage)
	if err != nil {
		log.Printf("object storage disabled: %v", err)
		storageUtil = nil
	} else {
		defer storageUtil.Close()
	}

	appctl.Init(authSvc, postSvc, commentSvc, favoriteSvc, ledgerSvc, exchangeSvc, notificationSvc)
	adminctl.Init(
		authSvc,
		admin_service.NewPostAdminService(db.Dao),
		admin_service.NewCommentAdminService(db.Dao),
		admin_service.NewUserAdminService(db.Dao),
		admin_service.NewPointAdminService(db.Dao),
		admin_service.NewNgWordAdminService(db.Dao, checker.Invalidate),
		exchangeSvc,
		pointStore,
		cleanupScanner,
		keywordLinker,
		mailSvc,
		storageUtil,
	)

	gin.SetMode(gin.ReleaseMode)
	app := gin.New()

	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())
	app.Use(middleware.Performance())
	app.Use(middleware.Cors())
	app.Use(middleware.SecureHeaders())
	app.Use(redis.RedisMiddleware())

	switch routerMode {
	case "admin":
		app.Use(middleware.RateLimit(500))
	case "app":
		app.Use(middleware.RateLimit(2000))
	default:
		app.Use(middleware.RateLimit(1000))
	}

	app.Use(monitoring.PrometheusMiddleware())
	app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   serviceName,
			"mode":      routerMode,
			"status":    "healthy",
			"version":   Version,
			"timestamp": time.Now(),
			"database":  db.GetDBStats(),
			"redis":     redis.IsConnected(),
		})
	})

	switch routerMode {
	case "admin":
		log.Printf("mounting admin routes...")
		router.InitAdmin(app)
	case "app":
		log.Printf("mounting app routes...")
		router.InitApp(app)
	default:
		log.Printf("mounting all routes...")
		router.InitApp(app)
		router.InitAdmin(app)
	}

	sched := scheduler.New(db.Dao, keywordLinker, &cfg.Scheduler)
	if err := sched.Start(); err != nil {
		log.Fatalf("scheduler failed to start: %v", err)
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      app,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}

	redis.CloseRedis()
	log.Println("bye")
}
