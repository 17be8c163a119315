package cmd

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/spigell/hf-uploader/internal/huntflow"
	"github.com/spigell/hf-uploader/internal/logger"
	"github.com/spigell/hf-uploader/internal/pipeline"
	"github.com/spigell/hf-uploader/internal/roster"
	"github.com/spigell/hf-uploader/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo},
}

var runCmd = &cobra.Command{
	Use:   "run <directory>",
	Short: "Upload the candidate roster from the given directory to Huntflow",
	Long: "The directory must contain one xlsx roster and position-named " +
		"subdirectories with resume files.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before submitting candidates")
	runCmd.Flags().Duration("request-delay", 0, "optional pause between rows to go easy on the API")
	runCmd.Flags().String("token-file", "", "file with the huntflow api token. Takes precedence over TOKEN.")

	viper.BindPFlag("token-file", runCmd.Flags().Lookup("token-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, dir string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the hf-uploader", zap.String("version", version))

	if _, err := os.Stat(dir); err != nil {
		logger.Error("directory not found", zap.String("directory", dir))
		return
	}

	spreadsheet, err := roster.FindSpreadsheet(dir)
	if err != nil {
		if errors.Is(err, roster.ErrNoSpreadsheet) {
			logger.Error("there is no xlsx file found in directory",
				zap.String("directory", dir),
			)
			return
		}
		logger.Fatal("looking for the roster spreadsheet", zap.Error(err))
	}

	rows, err := roster.Read(spreadsheet)
	if err != nil {
		logger.Fatal("reading the roster", zap.Error(err))
	}

	logger.Info("roster loaded",
		zap.String("spreadsheet", spreadsheet),
		zap.Int("candidates", len(rows)),
	)

	token, err := resolveToken(config)
	if err != nil {
		logger.Fatal(
			"loading huntflow token",
			zap.Error(err),
			zap.String("hint", "set the TOKEN environment variable or the token-file flag"),
		)
	}

	hf := huntflow.New(ctx, logger, config.BaseURL, config.OrgID, token)

	vacancies, err := hf.GetVacancies()
	if err != nil {
		logger.Fatal("getting the vacancy catalog", zap.Error(err))
	}

	logger.Info("fetched the vacancy catalog", zap.Int("count", vacancies.Len()))
	logger.Debug("open positions", zap.Strings("positions", vacancies.Positions()))

	if cmd.Flag("auto-approve").Value.String() == "false" {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if action == PromptNo {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	delay, err := cmd.Flags().GetDuration("request-delay")
	if err != nil {
		logger.Fatal("parsing request-delay", zap.Error(err))
	}

	p := pipeline.New(dir, delay, &pipeline.Deps{
		HF:     hf,
		Logger: logger,
	})

	if err := p.Run(ctx, vacancies, rows); err != nil {
		logger.Fatal("uploading the roster", zap.Error(err))
	}

	logger.Info("all candidates processed", zap.Int("count", len(rows)))
}

func resolveToken(config *Config) (string, error) {
	if config == nil {
		return "", errors.New("config is required")
	}

	return secrets.Load(secrets.Source{
		Name:  "huntflow token",
		Value: config.Token,
		File:  config.TokenFile,
	})
}
