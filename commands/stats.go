package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/services"
	"github.com/pathwise-app/pathwise_client/shared"
)

func init() {
	rootCmd.AddCommand(statsCmd, achievementsCmd, activityCmd, themeCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your XP, level, streak and study totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		gamificationSvc := ctx.Service(services.GAMIFICATION_SVC).(*services.GamificationService)

		summary, err := gamificationSvc.Summary()
		if err != nil {
			return renderError(err)
		}
		return printJSON(summary)
	},
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their unlock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		gamificationSvc := ctx.Service(services.GAMIFICATION_SVC).(*services.GamificationService)

		summary, err := gamificationSvc.Summary()
		if err != nil {
			return renderError(err)
		}

		for _, a := range summary.Achievements {
			mark := " "
			if a.IsUnlocked {
				mark = "x"
			}
			fmt.Printf("[%s] %s %s — %s\n", mark, a.Icon, a.Name, a.Description)
		}
		return nil
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Record today's study activity by hand",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		gamificationSvc := ctx.Service(services.GAMIFICATION_SVC).(*services.GamificationService)

		result, err := gamificationSvc.RecordActivity()
		if err != nil {
			return renderError(err)
		}

		if result.AlreadyCounted {
			fmt.Printf("Already counted today. Streak: %d day(s)\n", result.CurrentStreak)
		} else {
			fmt.Printf("Streak: %d day(s) (best %d)\n", result.CurrentStreak, result.LongestStreak)
		}
		for _, a := range result.Unlocked {
			fmt.Printf("Achievement unlocked: %s %s\n", a.Icon, a.Name)
		}
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the UI theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		tokenSvc := ctx.Service(services.TOKEN_SVC).(*services.TokenService)

		if len(args) == 0 {
			fmt.Println(tokenSvc.Theme())
			return nil
		}

		theme := args[0]
		if theme != shared.ThemeLight && theme != shared.ThemeDark {
			return fmt.Errorf("unknown theme %q", theme)
		}
		if err := tokenSvc.SetTheme(theme); err != nil {
			return renderError(err)
		}
		fmt.Printf("Theme set to %s\n", theme)
		return nil
	},
}
