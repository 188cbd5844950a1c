package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meur/gemwiki/internal/api"
	"github.com/meur/gemwiki/internal/site"
)

func (a *app) previewCmd() *cobra.Command {
	var (
		addr        string
		watchInputs bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the built site and a read-only catalog API on localhost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.builder(site.DefaultOptions())
			if err != nil {
				return err
			}
			srv := &http.Server{
				Handler:           api.New(a.store(), b, http.Dir(a.paths.Site), a.logger),
				ReadHeaderTimeout: 5 * time.Second,
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watchInputs {
				go func() {
					err := a.watch(ctx, func() error {
						cat, err := a.store().Load()
						if err != nil {
							return err
						}
						_, err = b.Build(cat)
						return err
					})
					if err != nil {
						a.logger.Error("watch stopped", zap.Error(err))
					}
				}()
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			printf(a.out, okStyle, "Serving %s on http://%s/", a.paths.Site, ln.Addr())
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	cmd.Flags().BoolVarP(&watchInputs, "watch", "w", false, "Rebuild the site when the catalog or images change")
	return cmd
}
