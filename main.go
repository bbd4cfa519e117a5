package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"aidesk/app/api"
	"aidesk/app/client/provider"
	"aidesk/app/config"
	"aidesk/app/service/assistant"
	"aidesk/app/service/history"
	"aidesk/app/storage"
	"aidesk/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, provider.New)
	do.Provide(di, history.New)
	do.Provide(di, storage.New)
	do.Provide(di, assistant.New)
	do.Provide(di, api.New)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	slog.Info("Service started", "addr", cfg.Server.Addr, "vendor", cfg.AI.Vendor)

	if err := do.MustInvoke[*api.Service](di).Run(appCtx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
