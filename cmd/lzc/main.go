package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/lzc/internal/cliconfig"
	"github.com/bft-labs/lzc/internal/logging"
	"github.com/bft-labs/lzc/internal/runner"
)

const helpDescription = `
Compute the Lempel-Ziv (LZ76) complexity of a symbol sequence.

The sequence is parsed greedily from left to right into phrases, each the
shortest extension of the current position not seen as a phrase before.
The complexity is the number of phrases. A final candidate that runs off
the end of the input is dropped and reported separately as the tail.

Input comes from the argument, --file (plain, gzip or zstd) or stdin, and
can be split into characters, bytes, whitespace-separated fields or lines.
Configure via $HOME/.lzc/config.toml, LZC_* environment variables or flags.
`

var exampleUsage = strings.TrimSpace(`
  lzc 1001111011000010
  lzc --phrases --format json --file bits.txt.gz
  lzc --symbols fields < words.txt
  lzc --watch --file sequence.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := logging.Default()

	root := &cobra.Command{
		Use:           "lzc [sequence]",
		Short:         "Compute the Lempel-Ziv (LZ76) complexity of a sequence",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment (LZC_*) overrides the file; flags override both.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			var arg string
			if len(args) == 1 {
				arg = args[0]
				if cfg.Watch {
					return fmt.Errorf("%w: watch cannot be combined with a sequence argument", cliconfig.ErrInvalidConfig)
				}
			}

			logger, err := logging.New(os.Stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			log = logger
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := runner.New(cfg,
				runner.WithLogger(log),
				runner.WithOutput(cmd.OutOrStdout()),
				runner.WithStdin(cmd.InOrStdin()),
			)

			if cfg.Watch {
				return r.Watch(ctx)
			}
			return r.Run(ctx, arg)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.lzc/config.toml)")
	root.Flags().StringVarP(&cfg.Input, "file", "f", cfg.Input, "read the sequence from a file (plain, gzip or zstd); - for stdin")
	root.Flags().StringVar(&cfg.Symbols, "symbols", cfg.Symbols, "symbol mode: chars, bytes, fields or lines")
	root.Flags().BoolVar(&cfg.StripSpace, "strip-space", cfg.StripSpace, "drop whitespace before splitting chars or bytes")

	root.Flags().BoolVarP(&cfg.Phrases, "phrases", "p", cfg.Phrases, "print the decomposition, not just the count")
	root.Flags().StringVarP(&cfg.Format, "format", "o", cfg.Format, "output format: text, json, yaml or toml")

	root.Flags().IntVar(&cfg.MaxInputBytes, "max-input-bytes", cfg.MaxInputBytes, "maximum decoded input size")
	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort the parse after this long (0 disables)")

	root.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "re-run whenever --file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before re-running in watch mode")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("lzc")
		os.Exit(1)
	}
}
