package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	mid "github.com/reviewlab/reviewgraph/internal/server/middleware"
	"github.com/reviewlab/reviewgraph/internal/util"
	"github.com/reviewlab/reviewgraph/pkg/graph"
	"github.com/reviewlab/reviewgraph/pkg/logger"
	"github.com/reviewlab/reviewgraph/pkg/tagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	taggerClient := tagger.NewClient(tagger.NewClientParams{
		BaseURL:    util.GetEnv("TAGGER_URL"),
		MaxRetries: util.GetEnvInt("TAGGER_MAX_RETRIES", 3),
	})

	engine, err := graph.NewEngine(graph.NewEngineParams{
		Tagger:          taggerClient,
		MinFrequency:    util.GetEnvInt("MIN_FREQUENCY", 0),
		MinCooccurrence: util.GetEnvInt("MIN_COOCCURRENCE", 0),
		TagParallelism:  util.GetEnvInt("TAG_PARALLELISM", 0),
	})
	if err != nil {
		logger.Fatal("Failed to create engine", "err", err)
	}

	state := &mid.AppState{Engine: engine}

	e.Use(mid.AppContextMiddleware(state))
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit("64M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
