package command

import (
	"fmt"
	"time"

	"dormhub/cmd/cli/authentication"
	"dormhub/cmd/cli/command/client"
	"dormhub/internal/microservices/http-api/dto"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// auth.go handles authentication commands for the dormctl application.

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the dormitory API server. Supports register, login, logout and whoami.`,
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new staff account",
	RunE: func(cmd *cobra.Command, args []string) error {
		// get data from flags
		var req dto.RegisterRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Email, _ = cmd.Flags().GetString("email")

		httpClient := client.NewHTTPClient(apiURL)
		user, err := httpClient.Register(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("registration process failed: %w", err)
		}

		color.Green("✓ Registration successful! Please login to continue.")
		fmt.Printf("UserID: %d\n", user.ID)
		return nil
	},
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the dormitory API",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Login(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("login process failed: %w", err)
		}

		// save token to the OS keyring
		err = authentication.StoreTokens(&authentication.StoredCredentials{
			AccessToken: response.AccessToken,
			Email:       req.Email,
			ExpiresAt:   time.Now().Add(time.Duration(response.ExpiresIn) * time.Second).Unix(),
		})
		if err != nil {
			return fmt.Errorf("store session: %w", err)
		}

		color.Green("✓ Successfully logged in!")
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and revoke the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err == nil {
			// the local session is dropped even if the server is unreachable
			if err := httpClient.Logout(cmd.Context()); err != nil {
				color.Yellow("! server logout failed: %v", err)
			}
		}

		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		color.Green("✓ Successfully logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account of the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		user, err := httpClient.Me(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get current user: %w", err)
		}

		fmt.Printf("ID: %d\n", user.ID)
		fmt.Printf("Username: %s\n", user.Username)
		fmt.Printf("Email: %s\n", user.Email)
		return nil
	},
}

// init function to add auth commands to root command
func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)

	// add flags for register command
	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("email")

	// add flags for login command
	loginCmd.Flags().StringP("email", "e", "", "Email of the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
