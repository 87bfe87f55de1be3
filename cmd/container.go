package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/fsx"
	"github.com/MieMoo/recruitment-module/pkg/fsx/fsxs3"
	"github.com/MieMoo/recruitment-module/pkg/iam/auth"
	"github.com/MieMoo/recruitment-module/pkg/iam/auth/authinfra"
	"github.com/MieMoo/recruitment-module/pkg/logx"
	"github.com/MieMoo/recruitment-module/recruitment/actionlog/actionloginfra"
	"github.com/MieMoo/recruitment-module/recruitment/applicant/applicantapi"
	"github.com/MieMoo/recruitment-module/recruitment/applicant/applicantinfra"
	"github.com/MieMoo/recruitment-module/recruitment/applicant/applicantsrv"
	"github.com/MieMoo/recruitment-module/recruitment/dashboard/dashboardapi"
	"github.com/MieMoo/recruitment-module/recruitment/dashboard/dashboardsrv"
	"github.com/MieMoo/recruitment-module/recruitment/interview/interviewapi"
	"github.com/MieMoo/recruitment-module/recruitment/interview/interviewinfra"
	"github.com/MieMoo/recruitment-module/recruitment/interview/interviewsrv"
	"github.com/MieMoo/recruitment-module/recruitment/workhistory/workhistoryapi"
	"github.com/MieMoo/recruitment-module/recruitment/workhistory/workhistoryinfra"
	"github.com/MieMoo/recruitment-module/recruitment/workhistory/workhistorysrv"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Auth
	AuthService  *auth.AuthService
	TokenService auth.TokenService

	// Recruitment Services
	ApplicantService   *applicantsrv.ApplicantService
	InterviewService   *interviewsrv.InterviewService
	WorkHistoryService *workhistorysrv.WorkHistoryService
	DashboardService   *dashboardsrv.DashboardService

	// API Handlers
	AuthHandlers        *auth.Handlers
	ApplicantHandlers   *applicantapi.Handlers
	InterviewHandlers   *interviewapi.Handlers
	WorkHistoryHandlers *workhistoryapi.Handlers
	DashboardHandlers   *dashboardapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, awsRegion, "uploads")

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	staffRepo := authinfra.NewPostgresStaffRepository(c.DB)
	applicantRepo := applicantinfra.NewPostgresApplicantRepository(c.DB)
	interviewRepo := interviewinfra.NewPostgresInterviewRepository(c.DB)
	workHistoryRepo := workhistoryinfra.NewPostgresWorkHistoryRepository(c.DB)
	actionLogRepo := actionloginfra.NewPostgresActionLogRepository(c.DB)

	// --- Auth ---
	passwordSvc := auth.NewBcryptService(0)
	sessionStore := auth.NewRedisSessionStore(c.Redis)
	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.Issuer,
	)
	c.AuthService = auth.NewAuthService(
		staffRepo,
		passwordSvc,
		c.TokenService,
		sessionStore,
		c.AuthConfig,
	)

	// --- Domain Services ---
	c.ApplicantService = applicantsrv.NewApplicantService(applicantRepo, actionLogRepo, c.FileSystem)
	c.InterviewService = interviewsrv.NewInterviewService(interviewRepo, applicantRepo)
	c.WorkHistoryService = workhistorysrv.NewWorkHistoryService(workHistoryRepo, applicantRepo)
	c.DashboardService = dashboardsrv.NewDashboardService(applicantRepo, c.InterviewService)

	// --- Handlers ---
	c.AuthHandlers = auth.NewHandlers(c.AuthService)
	c.ApplicantHandlers = applicantapi.NewHandlers(c.ApplicantService)
	c.InterviewHandlers = interviewapi.NewHandlers(c.InterviewService)
	c.WorkHistoryHandlers = workhistoryapi.NewHandlers(c.WorkHistoryService)
	c.DashboardHandlers = dashboardapi.NewHandlers(c.DashboardService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewTokenMiddleware(c.AuthService)
}
