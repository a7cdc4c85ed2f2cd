package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/Liso15/UbuntuExpress/internal/cfg"
	v1Http "github.com/Liso15/UbuntuExpress/internal/delivery/v1/http"
	"github.com/Liso15/UbuntuExpress/internal/infrastructure/kafka"
	minioInfra "github.com/Liso15/UbuntuExpress/internal/infrastructure/minio"
	"github.com/Liso15/UbuntuExpress/internal/infrastructure/simulator"
	s3Repo "github.com/Liso15/UbuntuExpress/internal/repository/minio"
	"github.com/Liso15/UbuntuExpress/internal/repository/pgdb"
	pgdbConv "github.com/Liso15/UbuntuExpress/internal/repository/pgdb/converter"
	"github.com/Liso15/UbuntuExpress/internal/repository/redis"
	redisConv "github.com/Liso15/UbuntuExpress/internal/repository/redis/converter"
	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/clients"
	"github.com/Liso15/UbuntuExpress/pkg/closer"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	"github.com/Liso15/UbuntuExpress/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	cl := closer.NewCloser(5 * time.Second)

	catConv := &pgdbConv.CategoryConverterImpl{}
	retConv := &pgdbConv.RetailerConverterImpl{}
	prConv := &pgdbConv.ProductConverterImpl{}
	priceConv := &pgdbConv.PriceConverterImpl{RetailerConv: retConv}
	alertConv := &pgdbConv.AlertConverterImpl{}
	subConv := &pgdbConv.SubscriberConverterImpl{}
	outboxConv := &pgdbConv.OutboxEventConverterImpl{}
	compConv := &redisConv.ComparisonConverterImpl{}

	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	retailerRepo := pgdb.NewRetailerRepo(db.Pool, retConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv, catConv)
	priceRepo := pgdb.NewPriceRepo(db.Pool, priceConv)
	alertRepo := pgdb.NewAlertRepo(db.Pool, alertConv)
	subscriberRepo := pgdb.NewSubscriberRepo(db.Pool, subConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, appCtx)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, compConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}

	catalogUC := usecase.NewCatalogUC(
		productRepo,
		categoryRepo,
		retailerRepo,
		priceRepo,
		cacheRepo,
		imagesInfra,
		db.Pool,
		logger,
	)
	priceUC := usecase.NewPriceUC(priceRepo, productRepo, outboxRepo, cacheRepo, db.Pool, logger)
	searchUC := usecase.NewSearchUC(productRepo, priceRepo, logger)
	subscriptionUC := usecase.NewSubscriptionUC(subscriberRepo, logger)
	alertUC := usecase.NewAlertUC(alertRepo, cfg.Alerts.DropThresholdPct, logger)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	outboxWorker.Start(appCtx)

	alertConsumer := kafka.NewAlertConsumer(cfg.Kafka, alertUC, logger)
	alertConsumer.Start(appCtx)

	priceSimulator := simulator.NewPriceSimulator(priceUC, cfg.Simulator, logger)
	priceSimulator.Start(appCtx)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(cfg.Http, cfg.Minio.UploadImagesLimit, catalogUC, priceUC, searchUC, subscriptionUC, alertUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// Закрытие в порядке LIFO: сперва HTTP, затем фоновые воркеры и клиенты.
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return alertConsumer.Close()
	})
	cl.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	appCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
