package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"outlands-pricer/internal/config"
	"outlands-pricer/internal/database"
	"outlands-pricer/internal/export"
	"outlands-pricer/internal/services"
	"outlands-pricer/internal/services/outlands"
	"outlands-pricer/internal/terms"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type options struct {
	searchURL      string
	accessToken    string
	outputPath     string
	sheet          string
	termsFile      string
	rateRequests   int
	rateInterval   time.Duration
	requestTimeout time.Duration
	databaseURL    string
}

func optionsFromConfig(cfg *config.Config) *options {
	return &options{
		searchURL:      cfg.SearchURL,
		accessToken:    cfg.AccessToken,
		outputPath:     cfg.OutputPath,
		sheet:          cfg.SheetName,
		termsFile:      cfg.TermsFile,
		rateRequests:   cfg.RequestsPerInterval,
		rateInterval:   cfg.RateInterval,
		requestTimeout: cfg.RequestTimeout,
		databaseURL:    cfg.DatabaseURL,
	}
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price-check",
		Short: "price-check averages Outlands vendor prices for a list of items and writes them to a spreadsheet.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.outputPath, "out", opts.outputPath, "The spreadsheet to write, replaced if it exists.")
	flags.StringVar(&opts.sheet, "sheet", opts.sheet, "The sheet name inside the spreadsheet.")
	flags.StringVar(&opts.termsFile, "terms", opts.termsFile, "A YAML file of search terms (defaults to the built-in list).")
	flags.IntVar(&opts.rateRequests, "rate-requests", opts.rateRequests, "Requests allowed per rate interval.")
	flags.DurationVar(&opts.rateInterval, "rate-interval", opts.rateInterval, "The rate interval.")
	flags.StringVar(&opts.databaseURL, "db", opts.databaseURL, "MySQL DSN to also store the run in (optional).")
	flags.StringVar(&opts.searchURL, "url", opts.searchURL, "The vendor search endpoint.")

	return cmd
}

func ExecuteContext(ctx context.Context) {
	cmd := newRootCmd(optionsFromConfig(config.Load()))
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runCheck is one full pass: sample every term, export, summarize.
// Per-term failures never make it return an error.
func runCheck(ctx context.Context, opts *options, out io.Writer) error {
	searchTerms, err := terms.Resolve(opts.termsFile)
	if err != nil {
		return err
	}

	var recorder services.Recorder
	if opts.databaseURL != "" {
		db, err := database.Initialize(opts.databaseURL)
		if err != nil {
			return err
		}
		runID := uuid.NewString()
		recorder = database.NewSnapshotStore(db).ForRun(runID)
		log.Printf("Recording run %s to %s", runID, database.MaskDSN(opts.databaseURL))
	}

	client := outlands.NewClient(opts.searchURL, opts.accessToken, opts.requestTimeout)
	pacer := services.NewPacer(opts.rateRequests, opts.rateInterval)
	log.Printf("Pacing at %d request(s) per %v", opts.rateRequests, opts.rateInterval)

	results, stats := services.NewSampler(client, pacer, recorder).Run(ctx, searchTerms)

	if err := export.WriteExcel(opts.outputPath, opts.sheet, results); err != nil {
		return err
	}
	log.Printf("Wrote %d rows to %s", len(results), opts.outputPath)

	export.RenderTable(out, results)
	fmt.Fprintf(out, "processed %d terms: %d priced, %d empty, %d failed in %v\n",
		stats.TotalProcessed, stats.SuccessRequests, stats.EmptyResults, stats.FailedRequests,
		stats.TotalDuration.Round(time.Millisecond))
	return nil
}
