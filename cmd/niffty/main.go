// Command niffty prints, renders, and serves NIFF music notation files.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"moria.us/niffty/config"
	"moria.us/niffty/score"
)

type globalFlags struct {
	verbose bool
	config  string
}

func (f *globalFlags) loadConfig() (*config.Config, error) {
	if f.config == "" {
		return config.Default(), nil
	}
	return config.Load(f.config)
}

func (f *globalFlags) loadScore(path string) (*score.Score, *config.Config, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := logrus.StandardLogger().WithField("score", path)
	s, err := score.LoadFile(path, cfg.ScoreOptions(log)...)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func newRootCommand() *cobra.Command {
	var f globalFlags
	cmd := &cobra.Command{
		Use:           "niffty",
		Short:         "Decode, print, and render NIFF music notation files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if f.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log skipped chunks and other details")
	pf.StringVar(&f.config, "config", "", "YAML configuration file")
	cmd.AddCommand(
		newDumpCommand(&f),
		newRenderCommand(&f),
		newServeCommand(&f),
	)
	return cmd
}

func mainE() error {
	return newRootCommand().Execute()
}

func main() {
	if err := mainE(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
