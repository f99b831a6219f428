package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/rfp-advisor/internal/decision"
	"github.com/spigell/rfp-advisor/internal/logger"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the reasoning backend is configured",
	Long: "Show whether the reasoning backend is configured. Without a backend every decision " +
		"is a mock PURSUE; with a failing backend decisions fall back to a conservative DECLINE.",
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}
		defer logger.Sync()

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		pipeline, err := newPipeline(context.Background(), config, logger)
		if err != nil {
			logger.Fatal("building the decision pipeline", zap.Error(err))
		}

		err = printJSON(struct {
			Health  string `json:"status"`
			Version string `json:"version"`
			decision.Status
		}{
			Health:  "healthy",
			Version: buildVersion(),
			Status:  pipeline.Status(),
		})
		if err != nil {
			logger.Fatal("printing status", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
