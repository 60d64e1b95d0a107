package provision

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// buildRootCmd is a convenience for help-only fallbacks.
func buildRootCmd() *cobra.Command { return buildRootCmdWith(&Config{LogLvl: "info"}) }

// buildRootCmdWith constructs a Cobra command tree wired to the existing fn* actions.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "provisionctl",
		Short:         "Provision runtime dependencies and pretrained model artifacts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cfg)
			if err != nil {
				return err
			}
			return fnRunAll(cmd.Context(), settings)
		},
	}

	// Persistent flags -> Config
	root.PersistentFlags().String("config", cfg.ConfigFile, "Config file overriding the built-in resource set (defaults PROVISIONCTL_CONFIG)")
	root.PersistentFlags().String("log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults PROVISIONCTL_LOG_LEVEL or info)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("config"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.ConfigFile = v
			}
		}
		if f := cmd.InheritedFlags().Lookup("log-level"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.LogLvl = v
			}
		}
		SetLogLevel(cfg.LogLvl)
	}

	allCmd := &cobra.Command{Use: "all", Short: "Install dependencies and fetch both models", Example: "  provisionctl all", RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cfg)
		if err != nil {
			return err
		}
		return fnRunAll(cmd.Context(), settings)
	}}
	depsCmd := &cobra.Command{Use: "deps", Short: "Install the Python package set from the manifest", Example: "  provisionctl deps", RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cfg)
		if err != nil {
			return err
		}
		return fnInstallDeps(cmd.Context(), settings)
	}}

	// models group
	modelsCmd := &cobra.Command{Use: "models", Short: "Fetch model artifacts", Args: func(cmd *cobra.Command, args []string) error {
		return nil
	}, RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("models requires a subcommand: all|speech|detect")
	}}
	modelsAll := &cobra.Command{Use: "all", Short: "Fetch speech and detection models", RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cfg)
		if err != nil {
			return err
		}
		if err := fnEnsureSpeech(cmd.Context(), settings); err != nil {
			return err
		}
		return fnEnsureDetect(cmd.Context(), settings)
	}}
	modelsSpeech := &cobra.Command{Use: "speech", Short: "Fetch the Vosk speech model", RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cfg)
		if err != nil {
			return err
		}
		return fnEnsureSpeech(cmd.Context(), settings)
	}}
	modelsDetect := &cobra.Command{Use: "detect", Short: "Fetch the MobileNet-SSD detection model", RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cfg)
		if err != nil {
			return err
		}
		return fnEnsureDetect(cmd.Context(), settings)
	}}
	modelsCmd.AddCommand(modelsAll, modelsSpeech, modelsDetect)

	verifyCmd := &cobra.Command{Use: "verify", Short: "Check provisioned resources exist (no network)", RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cfg)
		if err != nil {
			return err
		}
		return fnVerify(settings)
	}}

	root.AddCommand(allCmd, depsCmd, modelsCmd, verifyCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}
