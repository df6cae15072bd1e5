// cmd/api-server/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"edupath-server/internal/common/auth"
	"edupath-server/internal/common/aws"
	"edupath-server/internal/common/cache"
	"edupath-server/internal/common/completion"
	"edupath-server/internal/common/config"
	"edupath-server/internal/common/database"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/observability"
	"edupath-server/internal/common/relay"
	"edupath-server/internal/common/web"
	"edupath-server/internal/models"
	"edupath-server/internal/referencedata"

	"edupath-server/internal/handlers/admin/bulkimport"
	"edupath-server/internal/handlers/admin/dashboardstats"
	"edupath-server/internal/handlers/admin/leadsearch"
	"edupath-server/internal/handlers/aimatch"
	"edupath-server/internal/handlers/aisearch"
	"edupath-server/internal/handlers/blog"
	"edupath-server/internal/handlers/calculators"
	"edupath-server/internal/handlers/catalog"
	"edupath-server/internal/handlers/enquiry"
	"edupath-server/internal/handlers/essayreview"
)

const catalogCacheTTL = 5 * time.Minute

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting API server...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("api-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		// The server degrades gracefully without the cache.
		zapLog.Warn("redis unavailable, running without cache", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Init Elasticsearch (optional, lead indexing and admin lead search) ---
	var esClient *elasticsearch.Client
	var leadIndexer enquiry.LeadIndexer
	if cfg.Database.Elasticsearch.GetURL() != "" {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil || es.Ping() != nil {
			zapLog.Warn("elasticsearch unavailable, lead search will use the database", zap.Error(err))
		} else {
			esClient = es.Client
			leadIndexer = es
			zapLog.Info("Elasticsearch connected successfully")
		}
	}

	// --- Init External Service Clients ---
	completionClient := completion.New(completion.Config{
		APIKey:       cfg.APIs.OpenAI.APIKey,
		Organization: cfg.APIs.OpenAI.Organization,
		Model:        cfg.APIs.OpenAI.Model,
		Timeout:      config.GetDuration(cfg.APIs.OpenAI.Timeout),
	}, log)

	relayClient := relay.NewClient(
		cfg.Integrations.FormsRelay.URL,
		cfg.Integrations.FormsRelay.AccessKey,
		config.GetDuration(cfg.Integrations.FormsRelay.Timeout),
	)

	var emailSender enquiry.EmailSender
	if cfg.Integrations.AWS.SES.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Warn("SES client init failed, email notifications disabled", zap.Error(err))
		} else {
			emailSender = sesClient
		}
	}

	var topicPublisher enquiry.TopicPublisher
	if cfg.Integrations.AWS.SNS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Warn("SNS client init failed, lead alerts disabled", zap.Error(err))
		} else {
			topicPublisher = snsClient
		}
	}

	var adminValidator auth.TokenValidator
	if cfg.Auth.Keycloak.URL != "" {
		adminValidator = auth.NewKeycloakClient(
			cfg.Auth.Keycloak.URL,
			cfg.Auth.Keycloak.Realm,
			cfg.Auth.Keycloak.ClientID,
			cfg.Auth.Keycloak.ClientSecret,
		)
	}

	zapLog.Info("All external service clients initialized")

	// --- Shared components ---
	data := referencedata.NewProvider()
	sharedCache := cache.New(redisClient, catalogCacheTTL, log)

	// Notification toggles select the sinks; the AWS integration flags above
	// only control client construction.
	notifyCfg := enquiry.NotifyConfig{
		EmailFrom:      cfg.Integrations.AWS.SES.FromEmail,
		AlertThreshold: models.LeadPriority(cfg.Notification.SMS.PriorityThreshold),
	}
	if cfg.Notification.Email.Enabled {
		notifyCfg.EmailTo = cfg.Integrations.AWS.SES.ToEmail
	}
	if cfg.Notification.SMS.Enabled {
		notifyCfg.SNSTopicARN = cfg.Integrations.AWS.SNS.TopicARN
	}
	notifier := enquiry.NewNotifier(notifyCfg, relayClient, emailSender, topicPublisher, leadIndexer, log)

	// --- Routes ---
	mux := http.NewServeMux()

	registerRoutes(mux, &handlers{
		search:      aisearch.NewHandler(aisearch.LoadConfig(), completionClient, data, log),
		match:       aimatch.NewHandler(aimatch.LoadConfig(), completionClient, data, log),
		essay:       essayreview.NewHandler(essayreview.LoadConfig(), completionClient, log),
		enquiries:   enquiry.NewHandler(enquiry.NewPostgresStore(pg.GetDB()), notifier, log),
		catalog:     catalog.NewHandler(data, sharedCache, log),
		blog:        blog.NewHandler(pg.GetDB(), sharedCache, log),
		calculators: calculators.NewHandler(log),
		stats:       dashboardstats.NewHandler(pg.GetDB(), sharedCache, log),
		bulkImport:  bulkimport.NewHandler(pg.GetDB(), log),
		leadSearch:  leadsearch.NewHandler(esClient, pg.GetDB(), log),
	}, adminValidator, obs, log, pg.GetDB())

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown incomplete", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}

type handlers struct {
	search      *aisearch.Handler
	match       *aimatch.Handler
	essay       *essayreview.Handler
	enquiries   *enquiry.Handler
	catalog     *catalog.Handler
	blog        *blog.Handler
	calculators *calculators.Handler
	stats       *dashboardstats.Handler
	bulkImport  *bulkimport.Handler
	leadSearch  *leadsearch.Handler
}

func registerRoutes(mux *http.ServeMux, h *handlers, validator auth.TokenValidator, obs web.RequestRecorder, log logger.Logger, db *sql.DB) {
	post := func(route string, handler http.Handler) http.Handler {
		return web.Instrument(route, log, obs, web.RequireMethod(http.MethodPost, handler))
	}
	get := func(route string, handler http.Handler) http.Handler {
		return web.Instrument(route, log, obs, web.RequireMethod(http.MethodGet, handler))
	}
	admin := func(handler http.Handler) http.Handler {
		return auth.RequireAdmin(validator, log, handler)
	}

	// AI-assisted endpoints
	mux.Handle("/api/ai-search", post("/api/ai-search", h.search))
	mux.Handle("/api/ai-match", post("/api/ai-match", h.match))
	mux.Handle("/api/ai-essay-review", post("/api/ai-essay-review", h.essay))

	// Lead capture
	mux.Handle("/api/enquiries", post("/api/enquiries", h.enquiries))

	// Public reference data and content
	mux.Handle("/api/universities", get("/api/universities", http.HandlerFunc(h.catalog.Universities)))
	mux.Handle("/api/courses", get("/api/courses", http.HandlerFunc(h.catalog.Courses)))
	mux.Handle("/api/countries", get("/api/countries", http.HandlerFunc(h.catalog.Countries)))
	mux.Handle("/api/blog", get("/api/blog", http.HandlerFunc(h.blog.List)))
	mux.Handle("/api/blog/", get("/api/blog/{slug}", http.HandlerFunc(h.blog.Get)))

	// Calculators
	mux.Handle("/api/calculators/emi", post("/api/calculators/emi", http.HandlerFunc(h.calculators.EMI)))
	mux.Handle("/api/calculators/cgpa", post("/api/calculators/cgpa", http.HandlerFunc(h.calculators.CGPA)))
	mux.Handle("/api/calculators/cost-of-living", post("/api/calculators/cost-of-living", http.HandlerFunc(h.calculators.CostOfLiving)))

	// Admin
	mux.Handle("/api/admin/stats", get("/api/admin/stats", admin(h.stats)))
	mux.Handle("/api/admin/colleges/import", post("/api/admin/colleges/import", admin(h.bulkImport)))
	mux.Handle("/api/admin/leads/search", get("/api/admin/leads/search", admin(h.leadSearch)))

	// Operational
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			web.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
