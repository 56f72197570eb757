// libctl is an admin command line for the library backend. It shares
// the API client with the web front end and keeps its session token in
// a local file between invocations.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"libfront/internal/adapters/api"
	"libfront/internal/adapters/token"
	"libfront/internal/adapters/util"
	"libfront/internal/config"
)

func main() {
	log.SetFlags(0)

	root := &cobra.Command{
		Use:           "libctl",
		Short:         "Administer the library service from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newBooksCmd(),
		newLibrariesCmd(),
		newMembersCmd(),
		newLoansCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// newClient wires the shared API client with the file-backed token
// store so sessions survive between invocations.
func newClient() (*api.Client, error) {
	cfg := config.GetConfig()

	store, err := token.NewFileStore(cfg.DefaultTokenFile())
	if err != nil {
		return nil, err
	}

	opts := []api.Option{
		api.WithHTTPClient(&http.Client{
			Transport: &util.LoggingTransport{LogLevel: cfg.LogLevel},
			Timeout:   time.Duration(cfg.HTTPTimeoutSec) * time.Second,
		}),
		api.WithTokenStore(store),
	}
	if cfg.APIToken != "" {
		opts = append(opts, api.WithTokenProvider(func() string { return cfg.APIToken }))
	}

	return api.New(cfg.APIBaseURL, opts...)
}
