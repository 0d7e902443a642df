package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/services"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local status server (health, status, metrics)",
	RunE: func(cmd *cobra.Command, args []string) error {
		// MonitoringService blocks in Start, so it goes last and keeps
		// the process alive until interrupted.
		_, err := bootServices(&services.MonitoringService{})
		return err
	},
}
