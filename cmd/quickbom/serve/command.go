// Package serve implements the serve command, which exposes the integrator
// over HTTP.
package serve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickbom/quickbom/cmd/quickbom/internal/helper"
	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/pkg/integrator"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

func Command(_, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serves the integration API over HTTP",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "the address to listen on",
				Value: ":8080",
			},
		}, helper.BuildCommonFlags()...),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	// config files are looked up in the working directory, as uploads have
	// no location of their own
	cfg, err := helper.LoadConfig(cmd.String("config"), ".")
	if err != nil {
		return err
	}

	addr := cmd.String("addr")
	server := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(integrator.OptionsFromConfig(cfg)),
		ReadHeaderTimeout: 3 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	cmdlogger.Infof("Serving the quickbom API on %s", addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
