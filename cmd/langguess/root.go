package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/langguess"
	"github.com/npillmayer/langguess/modeldir"
	"github.com/npillmayer/langguess/tablefile"
)

// app carries the configuration shared by all sub-commands.
type app struct {
	config     *viper.Viper
	configFile string
	guesser    *langguess.Guesser
}

func newRootCommand() *cobra.Command {
	a := &app{config: viper.New()}
	rootCmd := &cobra.Command{
		Use:           "langguess",
		Short:         "Guess the natural language of text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.readConfig(cmd.Root())
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "",
		"config file (default is langguess.yaml in ., $HOME/.config/langguess, /etc/langguess)")
	flags.String("models", "", "directory of trigram model files, one file per language")
	flags.String("names", "", "file with additional language ids and names")
	flags.BoolP("verbose", "v", false, "debug level for CLI logging (library tracing is configured through schuko)")

	rootCmd.AddCommand(
		newGuessCommand(a),
		newInfoCommand(a),
		newLanguagesCommand(a),
		newTrigramsCommand(a),
		newEvalCommand(a),
	)
	return rootCmd
}

func (a *app) readConfig(root *cobra.Command) error {
	v := a.config
	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.SetConfigName("langguess")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/langguess")
		v.AddConfigPath("/etc/langguess")
	}
	v.SetEnvPrefix("LANGGUESS")
	v.AutomaticEnv()
	for _, key := range []string{"models", "names", "verbose"} {
		if err := v.BindPFlag(key, root.PersistentFlags().Lookup(key)); err != nil {
			return err
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if v.GetBool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debugf("using config file %s", used)
	}
	return nil
}

// loadGuesser creates the guesser from the configured model directory and
// name table. It is created once per command invocation.
func (a *app) loadGuesser() (*langguess.Guesser, error) {
	if a.guesser != nil {
		return a.guesser, nil
	}
	var opts []langguess.Option
	if names := a.config.GetString("names"); names != "" {
		registry, err := loadRegistry(names)
		if err != nil {
			return nil, err
		}
		opts = append(opts, langguess.WithRegistry(registry))
	}
	var models *langguess.ModelSet
	if dir := a.config.GetString("models"); dir != "" {
		var err error
		if models, err = modeldir.Load(os.DirFS(dir), "."); err != nil {
			return nil, err
		}
		logger.WithField("dir", dir).Debugf("loaded %d trigram models", models.Len())
	} else {
		logger.Warn("no trigram model directory configured, only script-decided languages will be recognized")
	}
	a.guesser = langguess.New(models, opts...)
	return a.guesser, nil
}

func loadRegistry(path string) (*langguess.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	registry := langguess.NewRegistry()
	if err = tablefile.LoadInto(registry, f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.WithField("file", path).Debug("loaded language names")
	return registry, nil
}
