package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/services"
)

func init() {
	rootCmd.AddCommand(dashboardCmd, profileCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your home dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		userSvc := ctx.Service(services.USER_SVC).(*services.UserService)

		resp, err := userSvc.Dashboard(cmd.Context())
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile [user-id]",
	Short: "Show a user profile (yours when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		userSvc := ctx.Service(services.USER_SVC).(*services.UserService)

		userID := ""
		if len(args) == 1 {
			userID = args[0]
		}

		resp, err := userSvc.Profile(cmd.Context(), userID)
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}
