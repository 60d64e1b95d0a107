package provision

import (
	"context"
	"flag"
	"fmt"
	"os"

	"provisionctl/internal/config"
)

type Config struct {
	ConfigFile string
	LogLvl     string
}

func usage() {
	fmt.Println("Usage: provisionctl [--config file] [--log-level info] [command]")
	fmt.Println()
	fmt.Println("With no command, runs the full provisioning sequence:")
	fmt.Println("dependency install, speech model, detection model.")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  all")
	fmt.Println("  deps")
	fmt.Println("  models all|speech|detect")
	fmt.Println("  verify")
}

// loadSettings resolves the resource declarations for a run: defaults when
// no config file is given, otherwise the file merged over the defaults.
func loadSettings(cfg *Config) (config.Config, error) {
	if cfg.ConfigFile == "" {
		return config.Defaults(), nil
	}
	c, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	return c.Merged(), nil
}

// Run dispatches the CLI command. It returns an error instead of exiting,
// enabling reuse from other packages or tests.
func Run(args []string, cfg *Config) error {
	settings, err := loadSettings(cfg)
	if err != nil {
		return err
	}
	ctx := context.Background()
	switch args[0] {
	case "all":
		return fnRunAll(ctx, settings)
	case "deps":
		return fnInstallDeps(ctx, settings)
	case "models":
		if len(args) < 2 {
			return fmt.Errorf("models requires a subcommand: all|speech|detect")
		}
		switch args[1] {
		case "all":
			if err := fnEnsureSpeech(ctx, settings); err != nil {
				return err
			}
			return fnEnsureDetect(ctx, settings)
		case "speech":
			return fnEnsureSpeech(ctx, settings)
		case "detect":
			return fnEnsureDetect(ctx, settings)
		default:
			return fmt.Errorf("unknown models subcommand: %s", args[1])
		}
	case "verify":
		return fnVerify(settings)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func ParseConfig() (*Config, []string) {
	return ParseConfigWith(flag.CommandLine, os.Args[1:])
}

// ParseConfigWith parses flags using the provided FlagSet and args slice.
// This enables tests to inject their own FlagSet and arguments without
// mutating global state.
func ParseConfigWith(fs *flag.FlagSet, args []string) (*Config, []string) {
	cfg := &Config{}
	// Only define flags if they are not already present on the provided FlagSet.
	if fs.Lookup("config") == nil {
		fs.String("config", envStr("PROVISIONCTL_CONFIG", ""), "Optional config file (.yaml|.json|.toml) overriding the built-in resource set")
	}
	if fs.Lookup("log-level") == nil {
		fs.String("log-level", envStr("PROVISIONCTL_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	}
	_ = fs.Parse(args)
	// Read back values from the parsed FlagSet, falling back to env defaults.
	cf := envStr("PROVISIONCTL_CONFIG", "")
	if f := fs.Lookup("config"); f != nil {
		if v := f.Value.String(); v != "" {
			cf = v
		}
	}
	ll := envStr("PROVISIONCTL_LOG_LEVEL", "info")
	if f := fs.Lookup("log-level"); f != nil {
		if v := f.Value.String(); v != "" {
			ll = v
		}
	}
	cfg.ConfigFile = cf
	cfg.LogLvl = ll
	return cfg, fs.Args()
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	// If user explicitly asks for help, print usage and exit 0
	for _, a := range args {
		if a == "-h" || a == "--help" || a == "help" {
			usage()
			return 0
		}
	}
	fs := flag.NewFlagSet("provisionctl", flag.ContinueOnError)
	cfg, rest := ParseConfigWith(fs, args)
	SetLogLevel(cfg.LogLvl)
	if len(rest) == 0 {
		// Zero-argument invocation provisions everything.
		rest = []string{"all"}
	}
	if err := Run(rest, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code (0 for success, non-zero on error) for use by cmd/provisionctl.
func Main() int { return MainWithArgs(os.Args[1:]) }
