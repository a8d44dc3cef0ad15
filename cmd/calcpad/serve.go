package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codefionn/calcpad/internal/logger"
	"github.com/codefionn/calcpad/internal/store"
	"github.com/codefionn/calcpad/internal/web"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const pruneInterval = time.Hour

var (
	serveAddr  string
	serveOpen  bool
	pruneAfter time.Duration
)

// serveCmd serves the keypad to the browser
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the keypad to the browser",
	Long: `Start the web server. Every page is its own calculator session; its
display is kept in the session store so a reload resumes it. The printed
URL carries the access token.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the browser")
	serveCmd.Flags().Bool("pprof", false, "Mount the profiler under /debug/pprof")
	serveCmd.Flags().DurationVar(&pruneAfter, "prune-after", 0, "Drop sqlite sessions untouched for this long (0 keeps them)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("open") {
		cfg.OpenBrowser = serveOpen
	}
	if cmd.Flags().Changed("pprof") {
		cfg.Pprof, _ = cmd.Flags().GetBool("pprof")
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	srv, err := web.NewServer(cfg, st)
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "calcpad listening on %s\n", color.CyanString(srv.GetURL()))
	if cfg.OpenBrowser {
		if err := srv.OpenBrowser(); err != nil {
			logger.Warn("Failed to open browser: %v", err)
			fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("could not open the browser: %v", err))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if pruner, ok := st.(store.Pruner); ok && pruneAfter > 0 {
		go prune(ctx, pruner, pruneAfter)
	}

	<-ctx.Done()
	return srv.Stop()
}

// prune drops stale sessions until ctx is done
func prune(ctx context.Context, p store.Pruner, maxAge time.Duration) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		n, err := p.Prune(ctx, time.Now().Add(-maxAge))
		if err != nil {
			logger.Warn("Failed to prune sessions: %v", err)
		} else if n > 0 {
			logger.Info("Pruned %d stale sessions", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
