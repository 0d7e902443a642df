package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/services"
)

func init() {
	skillsCmd.AddCommand(skillsSuggestCmd, skillsAssessmentCmd)
	rootCmd.AddCommand(skillsCmd)
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Explore skills to learn",
}

var skillsSuggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest skills matching a search query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		skillSvc := ctx.Service(services.SKILL_SVC).(*services.SkillService)

		resp, err := skillSvc.Suggest(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}

var skillsAssessmentCmd = &cobra.Command{
	Use:   "assessment <skill>",
	Short: "Fetch the placement assessment for a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		skillSvc := ctx.Service(services.SKILL_SVC).(*services.SkillService)

		resp, err := skillSvc.Assessment(cmd.Context(), args[0])
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}
