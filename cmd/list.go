package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Summarize the objects under the target prefix",
	Long: `Prints the number of objects, their total size and the first and last keys.
With --verbose every object is printed with its size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		_, err = rt.service.List(cmd.Context(), cmd.OutOrStdout(), verboseFlag)
		return err
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
