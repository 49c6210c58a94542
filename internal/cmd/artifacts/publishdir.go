package artifacts

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/depo-io/depoctl/internal/batch"
)

func PublishDirCommand() *cobra.Command {
	opts := batch.DefaultOptions()
	meta := publishMeta{Version: opts.Version}

	cmd := &cobra.Command{
		Use:   "publish-dir folder groupPath",
		Short: "Publish every eligible file of a folder, rescanning the repository once at the end.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("expected folder and groupPath arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Version = meta.Version
			opts.Description = meta.Description
			opts.Name = meta.Name
			opts.DeleteLocal = meta.DeleteLocal

			w := &batch.Workflow{Publisher: depotClient, Rescanner: depotClient}

			published, err := w.PublishAll(depotConfig, args[0], args[1], opts)
			if err != nil {
				return err
			}

			for _, a := range published {
				fmt.Println(color.GreenString(a.URL))
			}
			fmt.Printf("Published %d artifact(s)\n", len(published))
			return nil
		},
	}

	meta.register(cmd.Flags())

	flags := cmd.Flags()
	flags.StringVarP(&opts.Type, "type", "t", "", "Only publish files with this extension.")
	flags.StringSliceVar(&opts.Exclude, "exclude", nil, "Glob patterns of file names to skip.")
	flags.BoolVar(&opts.Rescan, "rescan", opts.Rescan, "Trigger one repository rescan after the batch.")
	flags.BoolVar(&opts.Verbose, "verbose-files", false, "Log every file as it is published.")

	return cmd
}
