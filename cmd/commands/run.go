package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"pixline"
	"pixline/config"
	"pixline/internal/application/usecase"
	"pixline/internal/application/worker"
	"pixline/internal/infrastructure/broker"
	"pixline/internal/infrastructure/caption"
	"pixline/internal/infrastructure/database"
	"pixline/internal/infrastructure/minio"
	"pixline/internal/presentation"
	"pixline/internal/presentation/handler"
	"pixline/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running pixline", "version", pixline.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	imageWriter := database.NewImageWriter(db)
	imageRetriever := database.NewImageRetriever(db)
	imageLister := database.NewImageLister(db)
	imageFinalizer := database.NewImageFinalizer(db)
	imageCounter := database.NewImageCounter(db)
	imageRemover := database.NewImageRemover(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOStore.Bucket); err != nil {
		ExitOnError(err)
	}

	blobUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOStore)
	blobDownloader := minio.NewDownloader(minIOClient.MinioClient, &cfg.MinIOStore)
	blobRemover := minio.NewRemover(minIOClient.MinioClient, &cfg.MinIOStore)

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	publisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	receiver := broker.NewReceiver(brokerClient)

	// The caption model client is process-wide: constructed once, shared by
	// all pipeline runs.
	describer := caption.NewClient(&cfg.Caption)

	uploader := usecase.NewUploader(imageWriter, imageRemover, blobUploader, blobRemover, publisher)
	getter := usecase.NewGetter(imageRetriever, cfg.Default.PublicAddress)
	lister := usecase.NewLister(imageLister, cfg.Default.PublicAddress)
	thumbnails := usecase.NewThumbnailGetter(imageRetriever, blobDownloader)
	stats := usecase.NewStatsReporter(imageCounter)
	processor := usecase.NewProcessor(imageRetriever, imageFinalizer, blobDownloader,
		blobUploader, blobRemover, describer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := worker.New(receiver, processor, cfg.Worker.Concurrency)
	if err := jobs.Start(ctx, cfg.Worker.ConsumerName); err != nil {
		ExitOnError(err)
	}

	uploadHandler := handler.NewUploadHandler(uploader)
	getHandler := handler.NewGetHandler(getter)
	listHandler := handler.NewListHandler(lister)
	thumbnailHandler := handler.NewThumbnailHandler(thumbnails)
	statsHandler := handler.NewStatsHandler(stats)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "API is working"})
	})

	e.POST("/api/images", uploadHandler.Handle)
	e.GET("/api/images", listHandler.HandleList)
	e.GET(fmt.Sprintf("/api/images/:%s", presentation.IDParam), getHandler.HandleGet)
	e.GET(fmt.Sprintf("/api/images/:%s/thumbnails/:%s", presentation.IDParam, presentation.SizeParam),
		thumbnailHandler.HandleThumbnail)
	e.GET("/api/stats", statsHandler.HandleStats)

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	jobs.Stop()

	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker client", "err", err)
	}
	if err := db.Stop(); err != nil {
		logger.Error("failed to disconnect database", "err", err)
	}
}
