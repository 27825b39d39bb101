package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/jisho-examples/internal/app"
	"github.com/heartmarshall/jisho-examples/internal/app/prompt"
)

type rootOptions struct {
	configPath string
	inputPath  string
	outputPath string
	baseURL    string
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "jisho-examples",
		Short: "Add yourei.jp example sentences to a Jisho vocabulary CSV",
		Long: `Reads a CSV exported from the Jisho app (word, reading, meaning),
looks up one example sentence per word on yourei.jp and writes a copy
with the sentence appended as a fourth column.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnrich(cmd, opts, os.Stdin)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.inputPath, "input", "i", "", "CSV file exported from Jisho")
	f.StringVarP(&opts.outputPath, "output", "o", "", "where to write the enriched CSV")
	f.StringVar(&opts.configPath, "config", "", "path to YAML config file")
	f.StringVar(&opts.baseURL, "base-url", "", "example sentence site (default https://yourei.jp/)")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func runEnrich(cmd *cobra.Command, opts rootOptions, stdin io.ReadCloser) error {
	runOpts := app.Options{
		ConfigPath: opts.configPath,
		InputPath:  opts.inputPath,
		OutputPath: opts.outputPath,
		BaseURL:    opts.baseURL,
		Out:        cmd.OutOrStdout(),
	}

	if opts.inputPath == "" || opts.outputPath == "" {
		asker, closer, err := prompt.New(stdin, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closer.Close()
		runOpts.Asker = asker
	}

	return app.Run(cmd.Context(), runOpts)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jisho-examples %s\n", app.BuildVersion())
		},
	}
}
