package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/classify"
	"github.com/matzehuels/fsa/pkg/dataset"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

func (c *CLI) classifyCommand() *cobra.Command {
	var (
		machine  string
		asJSON   bool
		opts     classify.Options
		attempts int
	)
	cmd := &cobra.Command{
		Use:   "classify [dataset]",
		Short: "Classify generated friend activity over a social graph",
		Long: `Classify generated friend activity over a social graph.

The dataset lists one "<id> <friend>" pair per line. A fixed share of ids is
marked genuine; each friend gets an activity string drawn from the genuine or
the fake pattern, and the machine decides which it is. The report compares
the verdicts with the truth.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)
			cfg := c.Config.Classify

			path := cfg.Dataset
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fsaerrors.New(fsaerrors.ErrCodeConfiguration, "no dataset: pass a path or set classify.dataset")
			}
			if err := fsaerrors.ValidatePath(path); err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("total") {
				opts.Total = cfg.Total
			}
			if !flags.Changed("genuine") {
				opts.Genuine = cfg.Genuine
			}
			if !flags.Changed("max-profiles") {
				opts.MaxProfiles = cfg.MaxProfiles
			}
			if !flags.Changed("seed") {
				opts.Seed = cfg.Seed
			}
			opts.Attempts = attempts
			opts.GenuinePattern = cfg.GenuinePattern
			opts.FakePattern = cfg.FakePattern
			opts.Logger = logger
			if err := opts.Validate(); err != nil {
				return err
			}

			g, err := dataset.Load(path)
			if err != nil {
				return err
			}
			logger.Debug("dataset loaded", "profiles", g.Len(), "edges", g.EdgeCount())

			m, a, err := loadMachine(machine)
			if err != nil {
				return err
			}
			cl, err := classify.NewWith(m.Name, a)
			if err != nil {
				return err
			}

			spin := newSpinner(ctx, "Classifying")
			spin.Start()
			report, err := classify.Evaluate(ctx, g, cl, opts)
			elapsed := spin.Stop()
			if err != nil {
				return err
			}
			logger.Info("Evaluated profiles", "count", report.Profiles, "elapsed", elapsed.Round(time.Millisecond))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(newStatus(cmd.OutOrStdout()), report)
			return nil
		},
	}
	defaults := classify.DefaultOptions()
	cmd.Flags().StringVar(&machine, "machine", "profile", "classifier machine")
	cmd.Flags().IntVar(&opts.Total, "total", defaults.Total, "ids taking part in the genuine split")
	cmd.Flags().IntVar(&opts.Genuine, "genuine", defaults.Genuine, "how many ids are genuine")
	cmd.Flags().IntVar(&opts.MaxProfiles, "max-profiles", defaults.MaxProfiles, "profiles to evaluate (0 = all)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", defaults.Seed, "random seed")
	cmd.Flags().IntVar(&attempts, "attempts", defaults.Attempts, "retries per friend for a unique activity string")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func printReport(st status, r *classify.Report) {
	st.ok("Classified %d samples from %d profiles", r.Samples, r.Profiles)
	st.field("truth", fmt.Sprintf("%d genuine, %d fake", r.TruthGenuine, r.TruthFake))
	st.field("predicted", fmt.Sprintf("%d genuine, %d fake", r.PredictedGenuine, r.PredictedFake))
	st.field("confusion", fmt.Sprintf("TP %d  FP %d  TN %d  FN %d", r.TP, r.FP, r.TN, r.FN))
	st.field("accuracy", fmt.Sprintf("%.4f", r.Accuracy()))
	st.field("precision", fmt.Sprintf("%.4f", r.Precision()))
	st.field("recall", fmt.Sprintf("%.4f", r.Recall()))
}
