package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/services"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPassword string

	whoamiRefresh bool
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	whoamiCmd.Flags().BoolVar(&whoamiRefresh, "refresh", false, "refetch the session user from the server")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		authSvc := ctx.Service(services.AUTH_SVC).(*services.AuthService)

		resp, err := authSvc.Login(cmd.Context(), dto.LoginRequest{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if err != nil {
			return renderError(err)
		}

		fmt.Printf("Logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and store the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		authSvc := ctx.Service(services.AUTH_SVC).(*services.AuthService)

		resp, err := authSvc.Register(cmd.Context(), dto.RegisterRequest{
			Name:     registerName,
			Email:    registerEmail,
			Password: registerPassword,
		})
		if err != nil {
			return renderError(err)
		}

		fmt.Printf("Welcome to Pathwise, %s\n", resp.User.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		authSvc := ctx.Service(services.AUTH_SVC).(*services.AuthService)

		if err := authSvc.Logout(); err != nil {
			return renderError(err)
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		tokenSvc := ctx.Service(services.TOKEN_SVC).(*services.TokenService)

		if !tokenSvc.IsAuthenticated() {
			fmt.Println("Not logged in")
			return nil
		}

		if whoamiRefresh {
			authSvc := ctx.Service(services.AUTH_SVC).(*services.AuthService)
			user, err := authSvc.Me(cmd.Context())
			if err != nil {
				return renderError(err)
			}
			return printJSON(user)
		}

		if user := tokenSvc.User(); user != nil {
			return printJSON(user)
		}

		fmt.Println("Session present, user not cached; run with --refresh")
		return nil
	},
}
