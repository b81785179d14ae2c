package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/pagewire"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := pagewire.New(siteCfg)
		if err := app.Setup(); err != nil {
			return err
		}
		defer app.Close()

		go func() {
			if err := app.Echo.Start(app.Config.Addr); err != nil && err != http.ErrServerClosed {
				app.Echo.Logger.Fatal(err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		app.Echo.Logger.Info("shutting down")
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.Echo.Shutdown(shutdown)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :3000)")
	serveCmd.Flags().Bool("watch", false, "reload page shells when the site directory changes")
	serveCmd.Flags().Float64("rate-limit", 0, "page requests per second per client, 0 disables")
}
