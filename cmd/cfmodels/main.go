package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moonwalker/cfmodels"
)

const (
	exitOK        = 0
	exitError     = 1
	exitException = 2
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var (
		flagValues Config
		configFile string
	)

	cmd := &cobra.Command{
		Use:           "cfmodels",
		Short:         "Creates classes from a Contentful content model",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &flagValues, configFile)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&flagValues.ApiKey, "api-key", "a", "", "the Contentful API key for the Content Delivery API (required)")
	flags.StringVarP(&flagValues.SpaceID, "space-id", "s", "", "the space id to fetch content types from (required)")
	flags.StringVarP(&flagValues.Namespace, "namespace", "n", cfmodels.DefaultNamespace, "the namespace the classes should be created in")
	flags.StringVarP(&flagValues.Environment, "environment", "e", defaultEnvironment, "the environment to fetch the content model from")
	flags.BoolVarP(&flagValues.Force, "force", "f", false, "automatically overwrite files that already exist")
	flags.StringVarP(&flagValues.Path, "path", "p", "", "path to the directory to create files in (default: current directory)")
	flags.StringVarP(&flagValues.Lang, "lang", "l", defaultLang, fmt.Sprintf("output language %v", cfmodels.LanguageNames()))
	flags.StringVar(&flagValues.OnConflict, "on-conflict", cfmodels.ConflictPrompt.String(), "what to do with existing files: prompt, overwrite or skip")
	flags.StringVar(&flagValues.SchemaFile, "schema-file", "", "read the content model from a content_types response or space export file instead of the API")
	flags.StringVar(&flagValues.Host, "host", "", "API host (default: cdn.contentful.com)")
	flags.BoolVar(&flagValues.Preview, "preview", false, "use the Content Preview API")
	flags.StringVar(&flagValues.GoModelPackage, "go-model-package", cfmodels.DefaultGoModelPackage, "import path of the model package used by Go output")
	flags.StringVar(&flagValues.LogLevel, "log-level", defaultLogLevel, "log level: debug, info, warn or error")
	flags.StringVarP(&configFile, "config", "c", "", fmt.Sprintf("config file (default: %s if present)", defaultConfigFile))

	cmd.SetVersionTemplate(fmt.Sprintf("%s v%s\n", name, version))
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func main() {
	os.Exit(execute())
}

func execute() int {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	return exitCode(err)
}

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var apiErr *cfmodels.APIError
	var uErr usageError
	if errors.As(err, &apiErr) || errors.As(err, &uErr) {
		return exitError
	}
	return exitException
}

func reportError(err error) {
	var apiErr *cfmodels.APIError
	var uErr usageError
	switch {
	case errors.As(err, &apiErr):
		slog.Error("there was an error communicating with the Contentful API",
			"error", apiErr.Message,
			"status", apiErr.StatusCode,
			"id", apiErr.ID,
			"requestId", apiErr.RequestID,
			"details", apiErr.DetailList(),
		)
		slog.Error("please verify that your api key and space id are correct")
	case errors.As(err, &uErr):
		slog.Error(uErr.Error())
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Run '%s --help' for usage.\n", rootCmd.CommandPath())
	default:
		slog.Error("unexpected error", "error", fmt.Sprintf("%+v", err))
	}
}
