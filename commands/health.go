package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/services"
)

func init() {
	rootCmd.AddCommand(healthCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the Pathwise API is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		api := ctx.Service(services.API_CLIENT_SVC).(*services.ApiClientService)

		resp, err := api.Health(cmd.Context())
		if err != nil {
			return renderError(err)
		}

		fmt.Printf("API status: %s\n", resp.Status)
		return nil
	},
}
