package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/smokeytempo/timelinegen/internal/usecase"
	"github.com/smokeytempo/timelinegen/internal/web"
)

const shutdownGracePeriod = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the timeline web page",
	Long:  "Start an HTTP server that serves the timeline page.\nBy default it listens on port 8080. Use --port to change it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		githubGateway, err := newGateway(logger)
		if err != nil {
			return err
		}

		// Inject dependencies: the page and canvas are the UI surface of the timeline.
		page := web.NewPage()
		canvas := web.NewCanvas()
		timeline := usecase.NewTimeline(githubGateway, page, canvas, logger)
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", viper.GetInt("port")),
			Handler: web.NewServer(timeline, page, canvas, logger).Router(),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		eg, egCtx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			fmt.Fprintf(cmd.OutOrStdout(), "Serving timeline at http://localhost%s\n", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve: %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			<-egCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
			defer cancel()
			logger.Println("Shutting down server...")
			return server.Shutdown(shutdownCtx)
		})
		return eg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}
