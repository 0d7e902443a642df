package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/services"
)

var purchaseReceipt string

func init() {
	premiumPurchaseCmd.Flags().StringVar(&purchaseReceipt, "receipt", "", "store receipt for the purchase")

	premiumCmd.AddCommand(premiumPurchaseCmd)
	rootCmd.AddCommand(premiumCmd)
}

var premiumCmd = &cobra.Command{
	Use:   "premium",
	Short: "Manage your premium subscription",
}

var premiumPurchaseCmd = &cobra.Command{
	Use:   "purchase <plan-id>",
	Short: "Purchase a premium plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		premiumSvc := ctx.Service(services.PREMIUM_SVC).(*services.PremiumService)

		resp, err := premiumSvc.Purchase(cmd.Context(), dto.PurchaseRequest{
			PlanID:  args[0],
			Receipt: purchaseReceipt,
		})
		if err != nil {
			return renderError(err)
		}

		if resp.Active {
			fmt.Printf("Premium active on plan %s\n", resp.Plan)
		} else {
			fmt.Println("Purchase recorded, subscription not active yet")
		}
		return printJSON(resp)
	},
}
