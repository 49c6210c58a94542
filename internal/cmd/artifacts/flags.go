package artifacts

import "github.com/spf13/pflag"

// publishMeta holds the per-artifact metadata flags shared by the publish
// commands.
type publishMeta struct {
	Version     string
	Description string
	Name        string
	DeleteLocal bool
}

func (m *publishMeta) register(flags *pflag.FlagSet) {
	flags.StringVar(&m.Version, "artifact-version", m.Version, "Artifact version. Defaults to \"1\".")
	flags.StringVarP(&m.Description, "description", "d", "", "Artifact description.")
	flags.StringVarP(&m.Name, "name", "n", "", "Artifact display name.")
	flags.BoolVar(&m.DeleteLocal, "delete-local", false, "Delete the local file after a successful upload.")
}
