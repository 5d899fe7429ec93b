package main

import (
	"os"

	"github.com/careermind/interviewprep/config"
	_ "github.com/careermind/interviewprep/docs" // Swagger docs
	"github.com/careermind/interviewprep/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title Interview Prep API
// @version 1.0
// @description Interview practice questions with AI-graded answers.
// @contact.name API Support
// @contact.email support@careermind.dev
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "interviewprep",
		Short:         "Interview practice API with AI answer grading",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.NewConfig()
			if err != nil {
				return err
			}
			logger.Configure(loaded.Log.Mode, loaded.Log.Level)
			cfg = loaded
			return nil
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServer(cfg)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Populate an empty question bank with the starter questions",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed(cmd.Context(), cfg)
			},
		},
	)
	return root
}
