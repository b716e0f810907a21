package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"logsweep/internal/cleaner"
	"logsweep/internal/config"
	"logsweep/pkg/domain"
	"logsweep/pkg/logger"
	"logsweep/pkg/serrors"
)

// newRootCommand constructs the logsweep command. The tool does one thing, so
// the flags live on the root command rather than a subcommand. Defaults for
// --days and --pattern come from the environment config; explicit flags win.
func newRootCommand(cfg *config.Config) *cobra.Command {
	var (
		path    string
		days    int
		pattern string
		remove  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "logsweep",
		Short: "Cleans up old log files from a directory tree",
		Long: "logsweep scans a directory tree for files matching a glob pattern and " +
			"reports (dry-run, the default) or deletes those older than the age threshold.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Setup(cfg.Environment, verbose)
			ctx := logger.WithFields(cmd.Context(), zap.String("run_id", uuid.NewString()))

			if days < 0 {
				return serrors.With(serrors.ErrInvalidInput, "days must be non-negative, got %d", days)
			}

			req := domain.Request{
				Root:       path,
				Pattern:    pattern,
				MaxAgeDays: days,
				Delete:     remove,
			}
			logger.Debug(ctx, "parsed request",
				zap.String("root", req.Root),
				zap.String("pattern", req.Pattern),
				zap.Int("maxAgeDays", req.MaxAgeDays),
				zap.Bool("delete", req.Delete))

			c := cleaner.New(cleaner.Options{})
			candidates, err := c.Scan(ctx, req)
			if err != nil {
				return err
			}

			return c.Dispose(ctx, candidates, req.Delete)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Root directory to scan")
	cmd.Flags().IntVar(&days, "days", cfg.Days, "Age threshold in days")
	cmd.Flags().StringVar(&pattern, "pattern", cfg.Pattern, "Filename glob pattern")
	cmd.Flags().BoolVar(&remove, "delete", false, "Actually delete files (default: dry-run)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
