package cmd

import (
	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload new and changed local files to the bucket",
	Long: `Uploads files under the root (or --target-path) that the bucket does not hold yet.
Files whose content is already stored under any key are skipped. Changed files
are only overwritten after confirmation, --yes or never with --no.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		_, err = rt.service.Upload(cmd.Context())
		return err
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)
}
