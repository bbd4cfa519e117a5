// Package api exposes the assistant features over HTTP. Input validation
// happens here; core failures come back as data from the assistant service
// and are always served with status 200.
package api

import (
	"context"
	"strings"

	"aidesk/app/config"
	"aidesk/app/service/assistant"
	"aidesk/app/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const maxUploadSize = 20 * 1024 * 1024

type Service struct {
	cfg          *config.Config
	assistantSvc *assistant.Service
	storageSvc   *storage.Service

	app      *fiber.App
	validate *validator.Validate
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:          do.MustInvoke[*config.Config](di),
		assistantSvc: do.MustInvoke[*assistant.Service](di),
		storageSvc:   do.MustInvoke[*storage.Service](di),
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             maxUploadSize,
	})

	if len(s.cfg.Server.CorsOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(s.cfg.Server.CorsOrigins, ","),
			AllowHeaders: "Origin, Content-Type, Accept",
		}))
	}

	apiGroup := app.Group("/api")
	apiGroup.Post("/chat", s.handleChat)
	apiGroup.Get("/chat/history/:userId", s.handleChatHistory)
	apiGroup.Post("/sentiment", s.handleSentiment)
	apiGroup.Post("/document/summarize", s.handleSummarize)
	apiGroup.Post("/image/analyze", s.handleAnalyzeImage)
	apiGroup.Post("/audio/transcribe", s.handleTranscribeAudio)

	s.app = app

	return s, nil
}

func (s *Service) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return s.app.Listen(s.cfg.Server.Addr)
	})

	group.Go(func() error {
		<-ctx.Done()

		return s.app.Shutdown()
	})

	return group.Wait()
}
