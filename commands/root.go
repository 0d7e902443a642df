package commands

import (
	"fmt"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/services"
	"github.com/pathwise-app/pathwise_client/shared"
)

var rootCmd = &cobra.Command{
	Use:           "pathwise",
	Short:         "Pathwise learning companion",
	Long:          "Command-line client for the Pathwise learning platform: roadmaps, skills, community and local progression tracking.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// bootServices wires the client service graph. None of the core services
// block in Start, so the context is immediately usable after Run; a blocking
// extra (the status server) keeps Run alive instead.
func bootServices(extra ...context.Service) (*context.Context, error) {
	svcs := []context.Service{
		&services.SqliteService{},
		&services.TokenService{},
		&services.TracingService{},
		&services.ApiClientService{},
		&services.GamificationService{},
		&services.AuthService{},
		&services.SkillService{},
		&services.RoadmapService{},
		&services.UserService{},
		&services.CommunityService{},
		&services.NotificationService{},
		&services.PremiumService{},
		&services.PomodoroService{},
	}
	svcs = append(svcs, extra...)

	ctx, err := context.NewCtx(svcs...)
	if err != nil {
		return nil, err
	}

	if err := ctx.Run(); err != nil {
		return nil, err
	}
	return ctx, nil
}

func printJSON(v interface{}) error {
	raw, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}

// renderError turns taxonomy errors into the short messages the terminal
// shows; anything else passes through. Validation failures keep their
// per-field detail.
func renderError(err error) error {
	if err == nil {
		return nil
	}
	appErr, ok := shared.GetAppError(err)
	if !ok {
		return err
	}

	if fieldErrs := dto.FormatValidationErrors(appErr.Err); len(fieldErrs) > 0 {
		messages := make([]string, len(fieldErrs))
		for i, fieldErr := range fieldErrs {
			messages[i] = fieldErr.Message
		}
		return fmt.Errorf("%s: %s", appErr.Message, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%s", appErr.Message)
}
