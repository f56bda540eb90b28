package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/vendor-onboarding/internal/cfg"
	v1Http "github.com/DRSN-tech/vendor-onboarding/internal/delivery/v1/http"
	"github.com/DRSN-tech/vendor-onboarding/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/vendor-onboarding/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/vendor-onboarding/internal/repository/minio"
	"github.com/DRSN-tech/vendor-onboarding/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/vendor-onboarding/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/vendor-onboarding/internal/repository/redis"
	redisConv "github.com/DRSN-tech/vendor-onboarding/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/clients"
	"github.com/DRSN-tech/vendor-onboarding/pkg/closer"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	"github.com/DRSN-tech/vendor-onboarding/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает все слои приложения и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker

	appCtx    context.Context
	appCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	appCtx, appCancel := context.WithCancel(context.Background())
	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	vendorConv := pgdbConv.NewVendorConverterImpl()
	productConv := pgdbConv.NewProductConverterImpl()
	uploadConv := pgdbConv.NewUploadConverterImpl()
	veConv := pgdbConv.NewValidationErrorConverterImpl()
	categoryConv := pgdbConv.NewCategoryConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	summaryConv := redisConv.NewVendorSummaryConverterImpl()

	vendorRepo := pgdb.NewVendorRepo(db.Pool, vendorConv)
	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	uploadRepo := pgdb.NewUploadRepo(db.Pool, uploadConv)
	errorRepo := pgdb.NewValidationErrorRepo(db.Pool, veConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, categoryConv)
	reportRepo := pgdb.NewReportRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	cacheRepo := redis.NewCacheRepo(redisClient, summaryConv, cfg.Redis, log)
	fileRepo := s3Repo.NewFileRepo(minioClient, cfg.Minio)

	filesInfra := minioInfra.NewMinioInfrastructure(fileRepo, cfg.Minio, log, appCtx)
	cl.Add(func(ctx context.Context) error {
		return filesInfra.WaitForCleanup(ctx)
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	cl.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		return nil
	})

	vendorUC := usecase.NewVendorUC(vendorRepo, outboxRepo, cacheRepo, db.Pool, log)
	ingestUC := usecase.NewIngestUC(uploadRepo, productRepo, errorRepo, outboxRepo, cacheRepo, filesInfra, db.Pool, log)
	reportUC := usecase.NewReportUC(reportRepo, categoryRepo, cacheRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(vendorUC, ingestUC, reportUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:          cfg,
		logger:       log,
		closer:       cl,
		httpSrv:      httpSrv,
		outboxWorker: outboxWorker,
		appCtx:       appCtx,
		appCancel:    appCancel,
	}, nil
}

// Run запускает HTTP-сервер и outbox-worker и блокируется до сигнала
// завершения или фатальной ошибки сервера. Ресурсы закрываются в порядке,
// обратном инициализации.
func (a *App) Run() error {
	const shutdownTimeout = 10 * time.Second

	a.outboxWorker.Start(a.appCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	a.appCancel()
	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
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
