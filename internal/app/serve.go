// internal/app/serve.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"platemap/internal/config"
	"platemap/internal/indexfile"
	"platemap/internal/server"
	"platemap/internal/session"
)

const shutdownGrace = 5 * time.Second

func newServeCmd(e *env) *cobra.Command {
	var (
		indexFile string
		addr      string
		ttl       time.Duration
	)
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve plate sessions over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inherit(cmd, "index", &indexFile, e.cfg.IndexFile)
			inherit(cmd, "addr", &addr, e.cfg.Addr)
			inherit(cmd, "session-ttl", &ttl, e.cfg.SessionTTL)
			return e.runServe(cmd.Context(), indexFile, addr, ttl)
		},
	}
	f := cmd.Flags()
	f.StringVar(&indexFile, "index", def.IndexFile, "index sheet shared by all sessions")
	f.StringVar(&addr, "addr", def.Addr, "listen address")
	f.DurationVar(&ttl, "session-ttl", def.SessionTTL, "drop sessions idle this long (0 keeps them)")
	return cmd
}

func (e *env) runServe(ctx context.Context, indexFile, addr string, ttl time.Duration) error {
	tab, info, err := indexfile.Load(indexFile)
	if err != nil {
		return usageErr(err)
	}
	e.log.Info("index loaded", "path", info.Path, "rows", info.Rows)
	e.warnIgnored(info)

	store := session.NewStore(tab, session.WithTTL(ttl), session.WithLogger(e.log))
	srv := &http.Server{
		Handler:           server.New(store, server.WithLogger(e.log), server.WithClock(e.now)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "listening on http://%s\n", ln.Addr())
	if err := e.flush(); err != nil {
		_ = ln.Close()
		return err
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	e.log.Info("shutting down", "sessions", store.Len())
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(sctx)
}
