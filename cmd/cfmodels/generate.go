package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/moonwalker/cfmodels"
)

func runGenerate(cmd *cobra.Command, flags *Config, configFile string) error {
	cfg, err := loadConfig(cmd, flags, configFile, defaultEnvFile)
	if err != nil {
		return err
	}
	logger := configLogger(cfg.LogLevel, cmd.ErrOrStderr())

	if err := cfg.validate(); err != nil {
		return err
	}
	lang, err := cfmodels.NewLanguage(cfg.Lang, cfmodels.LanguageOptions{
		GoModelPackage: cfg.GoModelPackage,
	})
	if err != nil {
		return usageError{err}
	}
	policy, err := cfg.conflictPolicy()
	if err != nil {
		return err
	}

	types, err := fetchContentTypes(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("found content types", "count", len(types.Items))

	if cfg.Path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg.Path = wd
		logger.Info("no path specified, creating files in current working directory", "path", cfg.Path)
	} else {
		logger.Info("path specified, files will be created there", "path", cfg.Path)
	}

	gen := &cfmodels.Generator{
		Language:   lang,
		Namespace:  cfg.Namespace,
		OutputDir:  cfg.Path,
		OnConflict: policy,
		Logger:     logger,
	}
	if policy == cfmodels.ConflictPrompt && stdinIsTerminal(cmd) {
		gen.Prompter = cfmodels.NewConsolePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	res, err := gen.Generate(cfmodels.NewSchema(types.Items))
	if err != nil {
		return err
	}

	logger.Info("files successfully created", "written", len(res.Written), "skipped", len(res.Skipped))
	return nil
}

func fetchContentTypes(ctx context.Context, cfg *Config, logger *slog.Logger) (*cfmodels.ContentTypes, error) {
	if cfg.SchemaFile != "" {
		logger.Info("reading content model", "file", cfg.SchemaFile)
		types, err := cfmodels.LoadContentTypes(cfg.SchemaFile)
		if err != nil {
			return nil, usageError{err}
		}
		return types, nil
	}

	client := cfmodels.NewClient(&cfmodels.ClientOptions{
		ApiToken:      cfg.ApiKey,
		SpaceID:       cfg.SpaceID,
		EnvironmentID: cfg.Environment,
		ApiHost:       cfg.Host,
		Preview:       cfg.Preview,
	})
	client.AfterRequest = func(c *cfmodels.Client, req *http.Request, elapsed time.Duration) {
		logger.Debug("request", "method", req.Method, "url", req.URL.Redacted(), "elapsed", elapsed)
	}

	logger.Info("get content types...", "space", cfg.SpaceID, "environment", cfg.Environment)
	return client.ContentTypes.GetTypes(ctx)
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
