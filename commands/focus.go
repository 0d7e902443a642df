package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/services"
)

var focusMinutes int

func init() {
	focusCmd.Flags().IntVar(&focusMinutes, "minutes", 25, "session length in minutes")
	rootCmd.AddCommand(focusCmd)
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run a focus timer and credit the study time",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		pomodoroSvc := ctx.Service(services.POMODORO_SVC).(*services.PomodoroService)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)
		go func() {
			<-sig
			pomodoroSvc.Stop()
		}()

		fmt.Printf("Focusing for %d minute(s). Ctrl-C to stop.\n", focusMinutes)
		result, err := pomodoroSvc.Run(focusMinutes, func(remaining int) {
			fmt.Printf("%d minute(s) remaining\n", remaining)
		})
		if err != nil {
			return renderError(err)
		}

		if !result.Completed {
			fmt.Println("Session stopped, nothing credited")
			return nil
		}

		fmt.Printf("Session complete: %d minute(s) credited\n", result.Minutes)
		if result.Activity != nil && !result.Activity.AlreadyCounted {
			fmt.Printf("Streak: %d day(s)\n", result.Activity.CurrentStreak)
		}
		if result.Activity != nil {
			for _, a := range result.Activity.Unlocked {
				fmt.Printf("Achievement unlocked: %s %s\n", a.Icon, a.Name)
			}
		}
		return nil
	},
}
