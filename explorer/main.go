package main

import (
	"io"
	"os"

	"bikeshare/explorer/config"
	"bikeshare/session"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string, out io.Writer) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(out)
	log.SetLevel(level)
	return nil
}

// newRootCommand returns the bikeshare command. Every flag is optional, without
// flags the embedded configuration is used.
func newRootCommand(in io.Reader, out io.Writer, logOut io.Writer) *cobra.Command {
	var configFilepath, dataDir, logLevel string

	rootCmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare data",
		Long:          "Interactive tool that prints statistics about the bikeshare trips of Chicago, New York City and Washington.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explorerConfig, err := config.LoadConfig(configFilepath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("data-dir") {
				explorerConfig.DataDir = dataDir
			}
			if cmd.Flags().Changed("log-level") {
				explorerConfig.LogLevel = logLevel
			}

			if err := InitLogger(explorerConfig.LogLevel, logOut); err != nil {
				return err
			}

			log.Debugf("[data_dir: %s][page_size: %v] starting explorer", explorerConfig.DataDir, explorerConfig.PageSize)
			return session.NewSession(explorerConfig, in, out).Run()
		},
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(logOut)
	rootCmd.Flags().StringVar(&configFilepath, "config", "", "path to a yaml file overriding the default configuration")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory that contains the city csv files")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	return rootCmd
}

// run executes the bikeshare command with args
func run(in io.Reader, out io.Writer, logOut io.Writer, args []string) error {
	rootCmd := newRootCommand(in, out, logOut)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}
