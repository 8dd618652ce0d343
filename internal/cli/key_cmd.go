package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/workbrief/internal/cli/formatter"
	"github.com/alexanderramin/workbrief/internal/config"
)

func newKeyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Store or remove the LLM API key in the OS keyring",
	}

	set := &cobra.Command{
		Use:   "set [key]",
		Short: "Store the API key; reads stdin when no key is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				text, err := readInput(cmd, nil)
				if err != nil {
					return err
				}
				key = firstLine(text)
			}
			if key == "" {
				return errors.New("api key cannot be empty")
			}
			if err := app.Keys.Set(key); err != nil {
				return err
			}
			printOut(cmd, formatter.Success("api key stored in keyring"))
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Keys.Delete()
			if errors.Is(err, config.ErrKeyNotFound) {
				printOut(cmd, formatter.Dim("no api key stored")+"\n")
				return nil
			}
			if err != nil {
				return err
			}
			printOut(cmd, formatter.Success("api key removed from keyring"))
			return nil
		},
	}

	cmd.AddCommand(set, clearCmd)
	return cmd
}
