// Command studio is the terminal client for the portfolio API: the public
// gallery, the contact form and the admin dashboard behind sign-in.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shutterfolio/backend/internal/client"
	"github.com/shutterfolio/backend/internal/config"
	"github.com/shutterfolio/backend/internal/logging"
	"github.com/shutterfolio/backend/internal/session"
	"github.com/shutterfolio/backend/internal/ui"
)

func main() {
	cfg := config.LoadStudio()

	// 画面が stdout を使うためログはファイルへ
	logFile, err := logging.SetupFile(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "studio: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	api, err := client.New(cfg.APIURL, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "studio: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("studio starting", "api", cfg.APIURL)
	app := ui.New(session.NewProvider(api), api)
	if err := app.Run(ctx); err != nil {
		slog.Error("studio exited", "error", err)
		fmt.Fprintf(os.Stderr, "studio: %v\n", err)
		os.Exit(1)
	}
	slog.Info("studio stopped")
}
