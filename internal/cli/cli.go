// Package cli implements the llmcalc command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"llmcalc/internal/config"
)

// Options carries the persistent flags and the resolved configuration shared
// by all subcommands.
type Options struct {
	ConfigPath string
	LogLevel   string
	Output     string

	cfg config.Config
	log zerolog.Logger
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &Options{ConfigPath: os.Getenv(config.EnvPrefix + "_CONFIG"), Output: "text"}
	root := buildRootCmdWith(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// resolve loads .env, the optional config file and LLMCALC_* overrides, then
// applies the persistent flags on top.
func (o *Options) resolve(stderr io.Writer, logLevelChanged bool) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Resolve(o.ConfigPath)
	if err != nil {
		return err
	}
	if logLevelChanged {
		cfg.LogLevel = o.LogLevel
	}
	o.cfg = cfg
	o.log = newLogger(stderr, cfg.LogLevel)
	return nil
}
