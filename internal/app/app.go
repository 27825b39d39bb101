package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/jisho-examples/internal/adapter/csvfile"
	"github.com/heartmarshall/jisho-examples/internal/adapter/provider/yourei"
	"github.com/heartmarshall/jisho-examples/internal/app/enricher"
	"github.com/heartmarshall/jisho-examples/internal/app/report"
	"github.com/heartmarshall/jisho-examples/internal/config"
	"github.com/heartmarshall/jisho-examples/pkg/ctxutil"
)

// PathAsker asks the user for a path when one was not configured.
type PathAsker interface {
	AskFilePath(question string, mustExist bool) (string, error)
}

// Options carries command-line overrides and I/O for Run.
type Options struct {
	ConfigPath string
	InputPath  string
	OutputPath string
	BaseURL    string

	Out   io.Writer
	Asker PathAsker
}

// Run is the application entry point. It loads configuration, resolves the
// input and output paths, enriches every record and prints the summary.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath, func(cfg *config.Config) {
		applyOverrides(cfg, opts)
	})
	if err != nil {
		return err
	}

	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	logger := NewLogger(cfg.Log)
	logger.Debug("starting jisho-examples", slog.String("version", BuildVersion()))

	report.Banner(opts.Out)

	inputPath, outputPath, err := resolvePaths(cfg.Files, opts.Asker)
	if err != nil {
		return err
	}

	start := time.Now()

	records, err := csvfile.Read(inputPath)
	if err != nil {
		return err
	}

	w, err := csvfile.Create(outputPath)
	if err != nil {
		return err
	}

	provider := yourei.NewProvider(logger,
		yourei.WithBaseURL(cfg.Lookup.BaseURL),
		yourei.WithTimeout(cfg.Lookup.Timeout),
		yourei.WithUserAgent(cfg.Lookup.UserAgent),
	)

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	logger.Info("enriching", slog.String("run_id", runID.String()),
		slog.String("input", inputPath), slog.String("output", outputPath))

	pipeline := enricher.NewPipeline(logger, provider, opts.Out)
	result, runErr := pipeline.Run(ctx, records, w)
	if closeErr := w.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return runErr
	}

	report.Done(opts.Out, time.Since(start))
	report.FailedWords(opts.Out, result.Failed)

	return nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.InputPath != "" {
		cfg.Files.InputPath = opts.InputPath
	}
	if opts.OutputPath != "" {
		cfg.Files.OutputPath = opts.OutputPath
	}
	if opts.BaseURL != "" {
		cfg.Lookup.BaseURL = opts.BaseURL
	}
}

// resolvePaths fills in whichever path was not configured by asking.
func resolvePaths(files config.FilesConfig, asker PathAsker) (string, string, error) {
	input, output := files.InputPath, files.OutputPath

	if (input == "" || output == "") && asker == nil {
		return "", "", fmt.Errorf("input and output paths are required")
	}

	var err error
	if input == "" {
		input, err = asker.AskFilePath("Please enter your CSV file path: ", true)
		if err != nil {
			return "", "", err
		}
	}
	if output == "" {
		output, err = asker.AskFilePath("Where do you want your new CSV file to be saved? ", false)
		if err != nil {
			return "", "", err
		}
	}
	return input, output, nil
}
