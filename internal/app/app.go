// Package app wires configuration into the services shared by the server,
// the worker and the operator CLI.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/quotable/leadintel/internal/analytics"
	"github.com/quotable/leadintel/internal/config"
	"github.com/quotable/leadintel/internal/feed"
	"github.com/quotable/leadintel/internal/intelligence"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/pkg/distlock"
	"github.com/quotable/leadintel/internal/pkg/httpretry"
	"github.com/quotable/leadintel/internal/pkg/logger"
	"github.com/quotable/leadintel/internal/pkg/simulate"
	"github.com/quotable/leadintel/internal/repository/dynamo"
	"github.com/quotable/leadintel/internal/repository/memory"
	"github.com/quotable/leadintel/internal/repository/postgres"
	"github.com/quotable/leadintel/internal/repository/redisstore"
	"github.com/quotable/leadintel/internal/service/campaign"
	"github.com/quotable/leadintel/internal/service/lead"
	"github.com/quotable/leadintel/internal/service/sending"
	"github.com/quotable/leadintel/internal/storage"
	"github.com/quotable/leadintel/internal/tracking"
	"github.com/quotable/leadintel/internal/worker"
)

// ErrUnknownBackend is returned for an unsupported storage or provider name.
var ErrUnknownBackend = errors.New("unknown backend")

// App holds the constructed services. Optional connections are nil when
// not configured.
type App struct {
	Config *config.Config

	DB       *sql.DB
	Redis    *redis.Client
	S3Client *s3.Client
	Archive  storage.Archive

	Copywriter   *llm.Copywriter
	Leads        *lead.Service
	Campaigns    *campaign.Service
	Analyzer     *analytics.Analyzer
	Optimizer    *analytics.Optimizer
	Reports      *analytics.ReportCache
	Sweeper      *worker.Sweeper
	Intelligence *intelligence.Service
	Recorder     tracking.Recorder
	Signer       tracking.Signer
}

// New connects the configured backends and builds every service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	logger.SetRedactPII(cfg.Logging.Redact())

	a := &App{Config: cfg}
	if err := a.connect(ctx); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.build(ctx); err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("services initialized",
		"campaign_store", cfg.Storage.Campaigns,
		"lead_store", cfg.Storage.Leads,
		"llm_provider", cfg.LLM.Provider,
		"email_provider", cfg.Email.Provider,
		"archive", cfg.S3.Enabled(),
	)
	return a, nil
}

func (a *App) connect(ctx context.Context) error {
	cfg := a.Config

	if cfg.Database.URL != "" {
		db, err := sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(5 * time.Minute)
		db.SetConnMaxIdleTime(time.Minute)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return fmt.Errorf("ping database: %w", err)
		}
		a.DB = db
		log.Println("[app] connected to database")
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		a.Redis = client
		log.Printf("[app] connected to redis at %s", cfg.Redis.Addr)
	}

	if cfg.S3.Enabled() {
		client, err := storage.NewS3Client(ctx, cfg.S3.Region)
		if err != nil {
			return err
		}
		a.S3Client = client
		a.Archive = storage.NewS3Archive(client, cfg.S3.Bucket, cfg.S3.Prefix)
		log.Printf("[app] archiving reports to s3://%s/%s", cfg.S3.Bucket, cfg.S3.Prefix)
	}
	return nil
}

func (a *App) build(ctx context.Context) error {
	cfg := a.Config
	rnd := simulate.New(cfg.Simulation.Seed)

	completer, err := a.completer(ctx)
	if err != nil {
		return err
	}
	a.Copywriter, err = llm.NewCopywriter(completer)
	if err != nil {
		return err
	}

	leadRepo, err := a.leadRepo(ctx)
	if err != nil {
		return err
	}
	scraperDelays, evalDelay := lead.DefaultScraperDelays(), cfg.Leads.EvaluationDelay()
	if cfg.Simulation.DisableLatency {
		scraperDelays, evalDelay = lead.ScraperDelays{}, 0
	}
	a.Leads = lead.NewService(leadRepo,
		lead.NewScraper(lead.NewGenerator(rnd), rnd, scraperDelays),
		lead.NewEvaluator(a.Copywriter, rnd, evalDelay))

	campaignRepo, err := a.campaignRepo(ctx)
	if err != nil {
		return err
	}
	sender, err := a.sender(ctx, rnd)
	if err != nil {
		return err
	}
	a.Campaigns = campaign.NewService(campaignRepo, a.Copywriter, sender,
		sending.Address{Name: cfg.Email.FromName, Email: cfg.Email.User})

	filter, err := analytics.NewRegionFilter(cfg.Analytics.RegionFilter, rnd)
	if err != nil {
		return err
	}
	delays := analytics.DefaultDelays()
	if cfg.Simulation.DisableLatency {
		delays = analytics.Delays{}
	}
	a.Analyzer = analytics.NewAnalyzer(filter, rnd, delays)
	a.Optimizer = analytics.NewOptimizer(a.Analyzer, cfg.Worker.Concurrency)
	a.Reports = analytics.NewReportCache()
	a.Sweeper = worker.NewSweeper(worker.SweeperConfig{
		Campaigns: a.Campaigns,
		Optimizer: a.Optimizer,
		Cache:     a.Reports,
		Archive:   a.Archive,
		Lock:      a.Lock("sweep"),
		Interval:  cfg.Worker.Interval(),
	})

	icfg := intelligence.Config{
		Completer: completer,
		Prompts:   a.Copywriter.Prompts(),
		Dashboard: a.Analyzer,
		Archive:   a.Archive,
	}
	if len(cfg.Feeds.URLs) > 0 {
		client := httpretry.NewRetryClient(&http.Client{Timeout: time.Duration(cfg.Feeds.TimeoutSeconds) * time.Second}, 2)
		icfg.Headlines = feed.NewReader(client, cfg.Feeds.URLs, cfg.Feeds.MaxItems)
	}
	a.Intelligence = intelligence.NewService(icfg)

	if a.Redis != nil {
		a.Recorder = tracking.NewRedisRecorder(a.Redis, cfg.Redis.KeyPrefix+":")
	} else {
		latency := tracking.DefaultLatency
		if cfg.Simulation.DisableLatency {
			latency = 0
		}
		a.Recorder = tracking.NewMemoryRecorder(latency)
	}

	if cfg.Tracking.Secret != "" {
		a.Signer = tracking.NewSigner([]byte(cfg.Tracking.Secret))
	} else {
		signer, err := tracking.RandomSigner()
		if err != nil {
			return fmt.Errorf("tracking signer: %w", err)
		}
		log.Printf("[app] TRACKING_SECRET not set, tracking links will not survive a restart")
		a.Signer = signer
	}
	return nil
}

func (a *App) completer(ctx context.Context) (llm.Completer, error) {
	cfg := a.Config
	switch cfg.LLM.Provider {
	case "openai":
		return llm.NewClient(llm.ClientConfig{
			APIKey:            cfg.OpenAI.APIKey,
			BaseURL:           cfg.OpenAI.BaseURL,
			Model:             cfg.OpenAI.Model,
			Temperature:       cfg.OpenAI.Temperature,
			Timeout:           cfg.OpenAI.Timeout(),
			MaxRetries:        cfg.LLM.MaxRetries,
			BreakerFailures:   uint32(cfg.LLM.BreakerFailures),
			BreakerTimeout:    cfg.LLM.BreakerTimeout(),
			RequestsPerSecond: cfg.LLM.RequestsPerSecond,
		}), nil
	case "bedrock":
		return llm.NewBedrockCompleterFromRegion(ctx, cfg.Bedrock.Region, cfg.Bedrock.ModelID)
	default:
		return nil, fmt.Errorf("%w: llm provider %q", ErrUnknownBackend, cfg.LLM.Provider)
	}
}

func (a *App) leadRepo(ctx context.Context) (lead.Repository, error) {
	switch a.Config.Storage.Leads {
	case "memory":
		return memory.NewLeadRepo(), nil
	case "postgres":
		if a.DB == nil {
			return nil, fmt.Errorf("lead store postgres: %w", errNeedsDatabase)
		}
		return postgres.NewLeadRepo(a.DB), nil
	case "dynamodb":
		client, err := dynamo.NewClient(ctx, a.Config.DynamoDB.Region)
		if err != nil {
			return nil, err
		}
		return dynamo.NewLeadRepo(client, a.Config.DynamoDB.TableName), nil
	default:
		return nil, fmt.Errorf("%w: lead store %q", ErrUnknownBackend, a.Config.Storage.Leads)
	}
}

var (
	errNeedsDatabase = errors.New("DATABASE_URL is not set")
	errNeedsRedis    = errors.New("REDIS_ADDR is not set")
)

func (a *App) campaignRepo(ctx context.Context) (campaign.Repository, error) {
	switch a.Config.Storage.Campaigns {
	case "memory":
		latency := memory.DefaultLatency()
		if a.Config.Simulation.DisableLatency {
			latency = memory.NoLatency()
		}
		return memory.NewSeededCampaignRepo(latency), nil
	case "postgres":
		if a.DB == nil {
			return nil, fmt.Errorf("campaign store postgres: %w", errNeedsDatabase)
		}
		repo := postgres.NewCampaignRepo(a.DB)
		n, err := campaign.SeedIfEmpty(ctx, repo, memory.SeedCampaigns()...)
		if err != nil {
			return nil, fmt.Errorf("seed postgres campaigns: %w", err)
		}
		if n > 0 {
			log.Printf("[app] seeded %d demo campaigns into postgres", n)
		}
		return repo, nil
	case "redis":
		if a.Redis == nil {
			return nil, fmt.Errorf("campaign store redis: %w", errNeedsRedis)
		}
		repo := redisstore.NewCampaignRepo(a.Redis, a.Config.Redis.KeyPrefix+":")
		n, err := repo.Seed(ctx, memory.SeedCampaigns()...)
		if err != nil {
			return nil, fmt.Errorf("seed redis campaigns: %w", err)
		}
		if n > 0 {
			log.Printf("[app] seeded %d demo campaigns into redis", n)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: campaign store %q", ErrUnknownBackend, a.Config.Storage.Campaigns)
	}
}

func (a *App) sender(ctx context.Context, rnd simulate.Source) (sending.Sender, error) {
	cfg := a.Config
	switch cfg.Email.Provider {
	case "simulated":
		delay := sending.DefaultSimulatedDelay
		if cfg.Simulation.DisableLatency {
			delay = 0
		}
		return sending.NewSimulatedSender(rnd, cfg.Email.SuccessRate, delay), nil
	case "ses":
		client, err := sending.NewSESClient(ctx, cfg.SES.Region, cfg.SES.AccessKey, cfg.SES.SecretKey)
		if err != nil {
			return nil, err
		}
		return sending.NewSESSender(client, sending.SESOptions{
			ConfigurationSet: cfg.SES.ConfigurationSet,
			MaxSendRate:      cfg.SES.MaxSendRate,
		}), nil
	default:
		return nil, fmt.Errorf("%w: email provider %q", ErrUnknownBackend, cfg.Email.Provider)
	}
}

// Lock returns a distributed lock for a named job, backed by Redis,
// PostgreSQL or the local process in that order of preference.
func (a *App) Lock(name string) distlock.DistLock {
	return distlock.NewLock(a.Redis, a.DB, a.Config.Redis.KeyPrefix+":lock:"+name, a.Config.Worker.LockTTL())
}

// Close releases the connections opened by New.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// ConfigPath returns the config file location, overridable with
// LEADINTEL_CONFIG.
func ConfigPath() string {
	if p := os.Getenv("LEADINTEL_CONFIG"); p != "" {
		return p
	}
	return "config/config.yaml"
}
