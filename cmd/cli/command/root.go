package command

// root.go defines the root command for the dormctl application.
// set up the global flags here.

import (
	"fmt"
	"os"

	"dormhub/cmd/cli/authentication"
	"dormhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var apiURL string // Global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dormctl",
	Short: "dormctl - dormitory management command line interface",
	Long: `dormctl lets dormitory staff work with the dormitory API from a terminal:
- Sign in and out of the API
- Inspect and adjust resident ratings
- Check occupancy and free rooms
- Download check-in and relocation notices

Use "dormctl [command] --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("DORMCTL_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(ratingCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(residentsCmd)
	rootCmd.AddCommand(noticeCmd)
}

// GetAuthenticatedClient returns an API client carrying the stored session token
func GetAuthenticatedClient() (*client.HTTPClient, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, err
	}
	httpClient := client.NewHTTPClient(apiURL)
	httpClient.SetToken(creds.AccessToken)
	return httpClient, nil
}
