package artifacts

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/depo-io/depoctl/internal/msg"
	"github.com/depo-io/depoctl/internal/storage"
)

func PublishCommand() *cobra.Command {
	var meta publishMeta
	var rescan bool

	cmd := &cobra.Command{
		Use:   "publish filename groupPath",
		Short: "Publish one local file as a versioned artifact.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("expected filename and groupPath arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := depotClient.Publish(depotConfig, storage.PublishRequest{
				LocalPath:   args[0],
				RemotePath:  args[1],
				Version:     meta.Version,
				Description: meta.Description,
				Name:        meta.Name,
				DeleteLocal: meta.DeleteLocal,
				Rescan:      rescan,
			})
			if err != nil {
				return fmt.Errorf(msg.FailedToPublish+": %w", args[0], err)
			}

			fmt.Printf("Published %s\n", color.GreenString(a.URL))
			return nil
		},
	}

	meta.register(cmd.Flags())
	cmd.Flags().BoolVar(&rescan, "rescan", true, "Trigger a repository rescan after the upload.")

	return cmd
}
