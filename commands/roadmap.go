package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/services"
)

var (
	roadmapSkillLevel  string
	roadmapWeeklyHours int
)

func init() {
	roadmapCreateCmd.Flags().StringVar(&roadmapSkillLevel, "level", "", "self-assessed level (beginner, intermediate, advanced)")
	roadmapCreateCmd.Flags().IntVar(&roadmapWeeklyHours, "hours", 0, "weekly hours available for study")

	roadmapCmd.AddCommand(
		roadmapCreateCmd,
		roadmapShowCmd,
		roadmapProgressCmd,
		roadmapCompleteCmd,
		roadmapUncompleteCmd,
		roadmapListCmd,
	)
	rootCmd.AddCommand(roadmapCmd)
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Create and work through learning roadmaps",
}

var roadmapCreateCmd = &cobra.Command{
	Use:   "create <skill>",
	Short: "Generate a roadmap for a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		roadmapSvc := ctx.Service(services.ROADMAP_SVC).(*services.RoadmapService)

		roadmap, err := roadmapSvc.Create(cmd.Context(), dto.CreateRoadmapRequest{
			Skill:       args[0],
			SkillLevel:  roadmapSkillLevel,
			WeeklyHours: roadmapWeeklyHours,
		})
		if err != nil {
			return renderError(err)
		}
		return printJSON(roadmap)
	},
}

var roadmapShowCmd = &cobra.Command{
	Use:   "show <roadmap-id>",
	Short: "Show a roadmap with its milestones and steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		roadmapSvc := ctx.Service(services.ROADMAP_SVC).(*services.RoadmapService)

		roadmap, err := roadmapSvc.Get(cmd.Context(), args[0])
		if err != nil {
			return renderError(err)
		}
		return printJSON(roadmap)
	},
}

var roadmapProgressCmd = &cobra.Command{
	Use:   "progress <roadmap-id>",
	Short: "Show completion progress for a roadmap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		roadmapSvc := ctx.Service(services.ROADMAP_SVC).(*services.RoadmapService)

		progress, err := roadmapSvc.Progress(cmd.Context(), args[0])
		if err != nil {
			return renderError(err)
		}
		return printJSON(progress)
	},
}

var roadmapCompleteCmd = &cobra.Command{
	Use:   "complete <roadmap-id> <step-id>",
	Short: "Mark a step complete and collect the rewards",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		roadmapSvc := ctx.Service(services.ROADMAP_SVC).(*services.RoadmapService)

		result, err := roadmapSvc.CompleteStep(cmd.Context(), args[0], args[1])
		if err != nil {
			return renderError(err)
		}

		if result.XP != nil {
			fmt.Printf("+%d XP (total %d, level %d)\n", result.XP.XPGained, result.XP.TotalXP, result.XP.Level)
			if result.XP.LeveledUp {
				fmt.Printf("Level up! You are now level %d\n", result.XP.Level)
			}
		}
		if result.Activity != nil && !result.Activity.AlreadyCounted {
			fmt.Printf("Streak: %d day(s)\n", result.Activity.CurrentStreak)
		}
		if result.RoadmapCompleted {
			fmt.Println("Roadmap complete!")
		}
		for _, a := range result.Unlocked {
			fmt.Printf("Achievement unlocked: %s %s\n", a.Icon, a.Name)
		}
		return printJSON(result.Progress)
	},
}

var roadmapUncompleteCmd = &cobra.Command{
	Use:   "uncomplete <roadmap-id> <step-id>",
	Short: "Mark a previously completed step as not done",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		roadmapSvc := ctx.Service(services.ROADMAP_SVC).(*services.RoadmapService)

		progress, err := roadmapSvc.UncompleteStep(cmd.Context(), args[0], args[1])
		if err != nil {
			return renderError(err)
		}
		return printJSON(progress)
	},
}

var roadmapListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your roadmaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		userSvc := ctx.Service(services.USER_SVC).(*services.UserService)

		resp, err := userSvc.MyRoadmaps(cmd.Context())
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}
