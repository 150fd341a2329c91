package cmd

import (
	"github.com/spf13/cobra"
)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download missing and changed objects into the local tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		_, err = rt.service.Download(cmd.Context())
		return err
	},
}

func init() {
	RootCmd.AddCommand(downloadCmd)
}
