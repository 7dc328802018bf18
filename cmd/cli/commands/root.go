package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/routes"
	"github.com/David-H-Afonso/gamesdatabase/internal/constants"
	"github.com/David-H-Afonso/gamesdatabase/pkg/api/v1/client"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagTimeout       = "timeout"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
	// requestTimeout is the per-request timeout
	requestTimeout time.Duration
)

// tokenPath returns where the CLI persists the bearer token between runs
func tokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gamesdatabase-token"
	}
	return filepath.Join(home, ".config", "gamesdatabase", "token")
}

// initClient initializes the API client
func initClient() error {
	var tokens client.TokenStore = client.NewFileTokenStore(tokenPath())
	if env := os.Getenv(constants.EnvToken); env != "" {
		store := &client.MemoryTokenStore{}
		store.Set(env)
		tokens = store
	}

	var err error
	apiClient, err = client.NewClient(&client.SessionOptions{
		BaseURL: serverAddress,
		Timeout: requestTimeout,
		Tokens:  tokens,
	})
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		fmt.Sprintf("Address of the games database API server (env: %s)", constants.EnvServerAddress))
	RootCmd.PersistentFlags().DurationVar(&requestTimeout, flagTimeout, client.DefaultTimeout, "API request timeout")

	RootCmd.AddCommand(GetLoginCmd())
	RootCmd.AddCommand(GetGamesCmd())
	RootCmd.AddCommand(GetViewsCmd())
	RootCmd.AddCommand(GetCatalogsCmd())
	RootCmd.AddCommand(GetUsersCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gamesdb",
	Short: "Games database CLI - manage a personal game collection over the API",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(constants.EnvServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}
		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// printJSON pretty prints an API response
func printJSON(v any) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Println(string(prettyJSON))
	return nil
}
