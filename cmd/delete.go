package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the objects under the target prefix",
	Long: `Deletes every object under --target-path that passes the filters.
A preview is printed first and the batch only runs after typing YES.
--yes does not skip this confirmation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		res, err := rt.service.Delete(cmd.Context())
		if err != nil {
			return err
		}
		if res.Cancelled {
			fmt.Fprintln(cmd.OutOrStdout(), "Action Canceled.")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}
