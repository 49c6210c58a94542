package artifacts

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/depo-io/depoctl/internal/config"
	"github.com/depo-io/depoctl/internal/http"
)

var (
	depotClient *http.Depot
	depotConfig config.Config
)

// Command returns the artifact command group. The --config flag accepts a
// preset name or a config file path; anything unresolvable falls back to
// the default depot.
func Command(preRun func(cmd *cobra.Command, args []string)) *cobra.Command {
	var cfgArg string
	var cacheDir string

	cmd := &cobra.Command{
		Use:              "artifacts",
		Short:            "Exchange versioned artifacts with the depot",
		SilenceUsage:     true,
		TraverseChildren: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if preRun != nil {
				preRun(cmd, args)
			}

			depotConfig = config.Resolve(cfgArg)
			depotClient = http.NewDepot(15*time.Minute, cacheDir)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cfgArg, "config", "c", "", "Depot configuration: a preset name or a config file path.")
	flags.StringVar(&cacheDir, "cache-dir", "", "Local artifact cache directory.")

	cmd.AddCommand(
		FetchCommand(),
		PublishCommand(),
		PublishDirCommand(),
	)

	return cmd
}
