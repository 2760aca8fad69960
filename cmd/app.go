package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/brogergvhs/erosscans/internal/config"
	"github.com/brogergvhs/erosscans/internal/providers"
	"github.com/brogergvhs/erosscans/internal/providers/erosscans"
	"github.com/brogergvhs/erosscans/internal/request"
	"github.com/brogergvhs/erosscans/internal/slog"
	"github.com/brogergvhs/erosscans/internal/ui"
	"github.com/brogergvhs/erosscans/internal/util"

	"github.com/spf13/cobra"
)

// app is what every site command needs: the merged config, a logger and
// the wired scraper.
type app struct {
	cfg     *config.Config
	log     *ui.Logger
	stats   *ui.Stats
	scraper providers.Scraper
	ctx     context.Context
	stop    context.CancelFunc
}

func newApp(cmd *cobra.Command, extra config.Options) (*app, error) {
	opts := extra
	opts.IgnoreConfig = flagIgnoreConfig
	opts.EnvFile = flagEnvFile
	opts.Debug = flagDebug
	opts.BaseURL = flagBaseURL
	opts.Format = flagFormat
	opts.Output = flagOutput
	opts.RequestsPerSecond = flagRPS
	opts.Retries = flagRetries
	opts.Timeout = flagTimeout
	opts.CloudflareBypass = flagCloudflareBypass
	opts.Cookie = flagCookie
	opts.CookieFile = flagCookieFile
	opts.UserAgent = flagUserAgent

	cfg, usedPath, err := config.LoadMerged(opts)
	if err != nil {
		return nil, err
	}

	// --retries 0 cannot be told apart from "unset" above.
	if cmd.Flags().Changed("retries") {
		cfg.Retries = max(0, flagRetries)
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("config: %s", strings.TrimSpace(usedPath))

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return nil, err
	}

	stats := ui.NewStats()

	var exec providers.Executor = request.New(client,
		request.WithRateLimit(cfg.RequestsPerSecond),
		request.WithRetryDelays(cfg.RetryDelays()),
		request.WithDebugLogger(logSvc),
		request.WithByteCounter(&stats.TotalBytes),
	)
	exec = slog.NewLoggingExecutor(exec, logSvc.Slog())

	var scr providers.Scraper = erosscans.New(exec,
		erosscans.WithBaseURL(cfg.BaseURL),
		erosscans.WithHeaders(cfg.Headers),
		erosscans.WithLongStrip(cfg.LongStrip),
	)
	if cfg.Debug {
		scr = slog.NewLoggingScraper(scr, logSvc.Slog())
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := util.InterruptContext(parent, cfg.Output)

	return &app{
		cfg:     cfg,
		log:     logSvc,
		stats:   stats,
		scraper: scr,
		ctx:     ctx,
		stop:    stop,
	}, nil
}

func (a *app) Close() {
	a.stop()
}

func (a *app) render(v any) error {
	return util.WriteOutput(a.cfg.Output, func(w io.Writer) error {
		return ui.Render(w, a.cfg.Format, v)
	})
}

// mangaIDArg accepts a bare slug or a full manga URL.
func mangaIDArg(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if !strings.Contains(arg, "/") {
		if arg == "" {
			return "", fmt.Errorf("manga id cannot be empty")
		}
		return arg, nil
	}

	u, err := url.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("invalid manga url %q: %w", arg, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 2 && parts[0] == "manga" && parts[1] != "" {
		return parts[1], nil
	}

	return "", fmt.Errorf("not a manga url: %q (want %s/manga/<id>)", arg, config.DefaultBaseURL)
}

func confirm(prompt string) bool {
	fmt.Print(prompt)

	var resp string
	_, _ = fmt.Fscanln(os.Stdin, &resp)
	resp = strings.TrimSpace(strings.ToLower(resp))

	return resp == "y" || resp == "yes"
}
