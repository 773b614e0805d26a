// Command snipexec serves snippet runtimes over the Model Context Protocol.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonwraymond/snipexec"
	"github.com/jonwraymond/snipexec/eval"
	"github.com/jonwraymond/snipexec/host"
	"github.com/jonwraymond/snipexec/internal/config"
	snipmcp "github.com/jonwraymond/snipexec/internal/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("snipexec: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "mcp":
		err = mcpMain(args)
	case "version":
		fmt.Println(snipexec.Version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "snipexec: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: snipexec <command> [flags]

Commands:
  mcp         Start the MCP server
  version     Print the version
  help        Show this help

Use "snipexec <command> -h" for command-specific flags.`)
}

// --- mcp ---

func mcpMain(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	instructions := fs.Bool("instructions", false, "print model instructions and exit")
	httpAddr := fs.String("http", "", "start HTTP server on address (e.g. :9090)")
	verbose := fs.Bool("v", false, "enable debug logging")
	_ = fs.Parse(args)

	if *instructions {
		fmt.Print(snipmcp.Instructions)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return serve(ctx, *httpAddr, *verbose)
}

func serve(ctx context.Context, httpAddr string, verbose bool) error {
	workspace, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining workspace: %w", err)
	}

	loaded, err := config.Load(workspace)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := loaded.Config

	engine, ok := eval.Lookup(cfg.EngineName())
	if !ok {
		return fmt.Errorf("unknown engine %q (registered: %v)", cfg.EngineName(), eval.Engines())
	}

	logger, err := newLogger(cfg, verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	h, err := host.New(host.Options{
		Engine:      engine,
		Logger:      zapBridge{s: logger.Sugar()},
		MaxRuntimes: cfg.MaxRuntimes(),
	})
	if err != nil {
		return fmt.Errorf("building host: %w", err)
	}

	server := snipmcp.NewServer(h)

	if httpAddr != "" {
		return serveHTTP(ctx, server, httpAddr)
	}
	return server.Run(ctx, &mcpsdk.StdioTransport{})
}

func serveHTTP(ctx context.Context, server *mcpsdk.Server, addr string) error {
	handler := mcpsdk.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcpsdk.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		_ = httpServer.Close()
	}()

	log.Printf("listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// --- logging ---

func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if lvl, err := zapcore.ParseLevel(cfg.LogLevel()); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

// zapBridge adapts a zap logger to the eval.Logger interface. Runtime
// execution lines land at debug level so stdio serving stays quiet unless
// asked for.
type zapBridge struct {
	s *zap.SugaredLogger
}

func (b zapBridge) Logf(format string, args ...any) {
	b.s.Debugf(format, args...)
}
