package artifacts

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/depo-io/depoctl/internal/msg"
	"github.com/depo-io/depoctl/internal/storage"
)

func FetchCommand() *cobra.Command {
	var version string
	var typ string

	cmd := &cobra.Command{
		Use:   "fetch groupPath artifactId",
		Short: "Fetch one artifact into the local cache and print its location.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("expected groupPath and artifactId arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, a, err := depotClient.Fetch(depotConfig, storage.FetchRequest{
				RemotePath: args[0],
				ArtifactID: args[1],
				Version:    version,
				Type:       typ,
			})
			if err != nil {
				return fmt.Errorf(msg.FailedToFetch+": %w", args[0], args[1], err)
			}

			fmt.Printf("Fetched %s (%d bytes)\n", color.GreenString(a.URL), len(data))
			fmt.Println(a.LocalPath)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&version, "artifact-version", "", "Artifact version. Defaults to \"1\".")
	flags.StringVarP(&typ, "type", "t", "", "Artifact type (file extension).")

	return cmd
}
