package configure

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/depo-io/depoctl/internal/credentials"
)

var (
	cliUsername = ""
	cliPassword = ""
)

// Command creates the `configure` command
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "configure",
		Short:   "Configure your depot credentials",
		Long:    `Persist locally your artifact depot credentials`,
		Example: "depoctl configure",
		Run: func(cmd *cobra.Command, args []string) {
			if err := Run(); err != nil {
				log.Err(err).Msg("failed to execute configure command")
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&cliUsername, "username", "u", "", "username for the artifact depot")
	cmd.Flags().StringVarP(&cliPassword, "password", "p", "", "password for the artifact depot")
	return cmd
}

// interactiveConfiguration expects the user to manually type-in their credentials
func interactiveConfiguration() (credentials.Credentials, error) {
	creds := credentials.Get()

	println("") // visual paragraph break
	qs := []*survey.Question{
		{
			Name: "username",
			Prompt: &survey.Input{
				Message: "Depot username",
				Default: creds.Username,
			},
			Validate: func(val interface{}) error {
				str, ok := val.(string)
				if !ok {
					return errors.New("invalid username")
				}
				if strings.TrimSpace(str) == "" {
					return errors.New("you need to type a username")
				}
				return nil
			},
		},
		{
			Name: "password",
			Prompt: &survey.Password{
				Message: fmt.Sprintf("Depot password %s", mask(creds.Password)),
			},
		},
	}

	if err := survey.Ask(qs, &creds); err != nil {
		return creds, err
	}
	println() // visual paragraph break
	return creds, nil
}

// Run starts the configure command
func Run() error {
	var creds credentials.Credentials
	var err error

	if cliUsername == "" && cliPassword == "" {
		creds, err = interactiveConfiguration()
	} else {
		creds = credentials.Credentials{
			Username: cliUsername,
			Password: cliPassword,
		}
	}
	if err != nil {
		return err
	}

	if !creds.IsSet() {
		log.Error().Msg("The provided credentials appear to be invalid and will NOT be saved.")
		return errors.New("invalid credentials provided")
	}
	if err := credentials.ToFile(creds); err != nil {
		return fmt.Errorf("unable to save credentials: %s", err)
	}
	println("You're all set!")
	return nil
}

// mask replaces all but the last four characters with asterisks.
func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
