package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"intent-router/internal/classifier"
)

func newClassifyCmd(opts *options) *cobra.Command {
	var (
		sessionID    string
		contextAware bool
	)

	cmd := &cobra.Command{
		Use:   "classify UTTERANCE...",
		Short: "Classify each argument as one turn of the same session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.pipeline(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, u := range args {
				res, err := uc.Classify(cmd.Context(), classifier.ClassifyInput{
					Utterance:    u,
					SessionID:    sessionID,
					ContextAware: contextAware,
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s\t%s\t%s\t%.3f\n", u, res.Intent, res.Agent, res.Confidence)
				if res.Context.Boosted {
					fmt.Fprintf(out, "  context: %s (%.3f) -> %s\n", res.Context.OriginalIntent, res.Context.OriginalConfidence, res.Intent)
				}
				for _, s := range res.MultiIntents {
					fmt.Fprintf(out, "  segment: %q -> %s\n", s.Segment, s.Intent)
				}
				for name, v := range res.Slots {
					fmt.Fprintf(out, "  slot: %s=%s\n", name, v.Value)
				}
				if res.NeedsDisambiguation {
					fmt.Fprintf(out, "  clarify: %s\n", res.Disambiguation.Prompt)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "cli", "session id shared by all turns")
	cmd.Flags().BoolVar(&contextAware, "context", true, "boost low-confidence turns from session history")
	return cmd
}

func newCandidatesCmd(opts *options) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "candidates UTTERANCE",
		Short: "Rank the closest intents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.pipeline(cmd)
			if err != nil {
				return err
			}

			got, err := uc.Candidates(cmd.Context(), strings.Join(args, " "), k)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, c := range got {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.3f\n", i+1, c.Intent, c.Agent, c.Score)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&k, "top", "k", 3, "number of candidates")
	return cmd
}

func newMultiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "multi UTTERANCE",
		Short: "Split a compound request into sub-intents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.pipeline(cmd)
			if err != nil {
				return err
			}

			r, err := uc.DetectMultiIntent(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range r.Intents {
				fmt.Fprintf(out, "%q\t%s\t%s\n", s.Segment, s.Intent, s.Agent)
			}
			fmt.Fprintf(out, "order: %s\n", strings.Join(r.SuggestedOrder, ", "))
			return nil
		},
	}
}

func newSlotsCmd(opts *options) *cobra.Command {
	var intent string

	cmd := &cobra.Command{
		Use:   "slots UTTERANCE",
		Short: "Extract slots for an intent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.pipeline(cmd)
			if err != nil {
				return err
			}

			r, err := uc.ExtractSlots(cmd.Context(), strings.Join(args, " "), intent)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for name, v := range r.Slots {
				fmt.Fprintf(out, "%s=%s\n", name, v.Value)
			}
			for _, m := range r.Missing {
				fmt.Fprintf(out, "missing %s: %s\n", m.Name, m.Prompt)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&intent, "intent", "", "intent whose slots to extract (default common slots only)")
	return cmd
}

func newIntentsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "List the intent catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.pipeline(cmd)
			if err != nil {
				return err
			}

			list, err := uc.ListIntents(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, in := range list.Intents {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", in.ID, in.Name, in.Category, in.Agent, in.Priority)
			}
			return w.Flush()
		},
	}
}
