package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-crm/internal/bootstrap"
	"voice-crm/internal/config"
	"voice-crm/internal/observability"

	"github.com/spf13/pflag"
)

func main() {
	var opts options
	pflag.StringVarP(&opts.Audio, "audio", "a", "", "audio to transcribe: gs:// URI, storage.googleapis.com URL or local file")
	pflag.StringVarP(&opts.Transcript, "transcript", "t", "", "skip transcription and dispatch this text")
	pflag.BoolVar(&opts.Summarize, "summarize", false, "summarize the transcript instead of running CRM commands")
	pflag.Parse()

	if opts.Audio == "" && opts.Transcript == "" {
		fmt.Fprintln(os.Stderr, "one of --audio or --transcript is required")
		pflag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	p := pipeline{
		transcriber: deps.TranscriptionProcessor,
		intent:      deps.IntentProcessor,
		readFile:    os.ReadFile,
		out:         os.Stdout,
	}
	if err := p.run(ctx, opts); err != nil {
		if errors.Is(err, errNotUnderstood) {
			os.Exit(3)
		}
		logger.Error(ctx, "voice pipeline failed", err)
		os.Exit(1)
	}
}
