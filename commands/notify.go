package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/services"
)

var (
	notifyDailyReminder bool
	notifyReminderTime  string
	notifyStreakAlerts  bool
	notifyCommunity     bool

	pushPlatform string
)

func init() {
	notifySetCmd.Flags().BoolVar(&notifyDailyReminder, "daily-reminder", false, "enable the daily study reminder")
	notifySetCmd.Flags().StringVar(&notifyReminderTime, "reminder-time", "", "reminder time as HH:MM")
	notifySetCmd.Flags().BoolVar(&notifyStreakAlerts, "streak-alerts", false, "enable streak-at-risk alerts")
	notifySetCmd.Flags().BoolVar(&notifyCommunity, "community", false, "enable community activity notifications")

	notifyPushCmd.Flags().StringVar(&pushPlatform, "platform", "web", "push platform (ios, android, web)")

	notifyCmd.AddCommand(notifyShowCmd, notifySetCmd, notifyPushCmd, notifyHistoryCmd)
	rootCmd.AddCommand(notifyCmd)
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage notification preferences",
}

var notifyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your notification preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		notifySvc := ctx.Service(services.NOTIFICATION_SVC).(*services.NotificationService)

		prefs, err := notifySvc.Preferences(cmd.Context())
		if err != nil {
			return renderError(err)
		}
		return printJSON(prefs)
	},
}

var notifySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update notification preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		notifySvc := ctx.Service(services.NOTIFICATION_SVC).(*services.NotificationService)

		// Start from the server copy so unset flags keep their value.
		prefs, err := notifySvc.Preferences(cmd.Context())
		if err != nil {
			return renderError(err)
		}

		if cmd.Flags().Changed("daily-reminder") {
			prefs.DailyReminder = notifyDailyReminder
		}
		if cmd.Flags().Changed("reminder-time") {
			prefs.ReminderTime = notifyReminderTime
		}
		if cmd.Flags().Changed("streak-alerts") {
			prefs.StreakAlerts = notifyStreakAlerts
		}
		if cmd.Flags().Changed("community") {
			prefs.CommunityActivity = notifyCommunity
		}

		updated, err := notifySvc.UpdatePreferences(cmd.Context(), *prefs)
		if err != nil {
			return renderError(err)
		}
		return printJSON(updated)
	},
}

var notifyPushCmd = &cobra.Command{
	Use:   "push-token <token>",
	Short: "Register a device push token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		notifySvc := ctx.Service(services.NOTIFICATION_SVC).(*services.NotificationService)

		if err := notifySvc.RegisterPushToken(cmd.Context(), args[0], pushPlatform); err != nil {
			return renderError(err)
		}
		fmt.Println("Push token registered")
		return nil
	},
}

var notifyHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently delivered notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		notifySvc := ctx.Service(services.NOTIFICATION_SVC).(*services.NotificationService)

		resp, err := notifySvc.History(cmd.Context())
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}
