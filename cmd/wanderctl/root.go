package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hoangNguyenDev3/WanderSphere/internal/api"
	"github.com/hoangNguyenDev3/WanderSphere/internal/config"
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
	"github.com/hoangNguyenDev3/WanderSphere/internal/notify"
	"github.com/hoangNguyenDev3/WanderSphere/internal/observability"
	"github.com/hoangNguyenDev3/WanderSphere/internal/pages"
	"github.com/hoangNguyenDev3/WanderSphere/internal/session"
)

var svc *pages.Service

var rootCmd = &cobra.Command{
	Use:           "wanderctl",
	Short:         "WanderSphere terminal client",
	Long:          "wanderctl talks to a WanderSphere backend: browse your feed, follow people, like and publish posts.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; config falls back to env vars and defaults.
		_ = godotenv.Load()

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		observability.Init(cfg.LogLevel)

		store := session.NewStore(cfg.StoragePath)
		sess, err := session.NewManager(store)
		if err != nil {
			return err
		}

		client, err := api.New(cfg)
		if err != nil {
			return err
		}
		// Any 401 invalidates the cached viewer, the forced-logout path.
		client.SetUnauthorizedHook(sess.Clear)

		svc = pages.NewService(cfg, client, sess, notify.NewLogNotifier())
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(followersCmd)
	rootCmd.AddCommand(followingCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(unfollowCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestionsCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(likeCmd)
}

// requireViewer returns the signed-in viewer or a login prompt error.
func requireViewer() (models.User, error) {
	viewer, ok := svc.Session().Viewer()
	if !ok {
		return models.User{}, fmt.Errorf("not logged in; run 'wanderctl login' first")
	}
	return viewer, nil
}
