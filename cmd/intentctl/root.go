package main

import (
	"github.com/spf13/cobra"

	"intent-router/config"
	"intent-router/internal/classifier"
	"intent-router/internal/classifier/usecase"
	"intent-router/pkg/log"
)

type options struct {
	embedder string
	catalog  string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "intentctl",
		Short:        "Classify member utterances into routing intents",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.embedder, "embedder", "", `embedder kind, "seeded" or "lexical" (default from config)`)
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "intent catalog YAML (default embedded catalog)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline activity to stderr")

	root.AddCommand(
		newClassifyCmd(opts),
		newCandidatesCmd(opts),
		newMultiCmd(opts),
		newSlotsCmd(opts),
		newIntentsCmd(opts),
	)
	return root
}

// pipeline loads config, applies flag overrides and builds the use case.
func (o *options) pipeline(cmd *cobra.Command) (classifier.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.embedder != "" {
		cfg.Embedder.Kind = o.embedder
	}
	if o.catalog != "" {
		cfg.Catalog.Path = o.catalog
	}

	logger := log.NewNop()
	if o.verbose {
		logger = log.Init(log.ZapConfig{
			Level:    "debug",
			Mode:     "development",
			Encoding: "console",
		})
	}

	return usecase.Bootstrap(cmd.Context(), cfg, logger, nil)
}
