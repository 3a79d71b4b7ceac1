// Package cli implements the turkmenfst command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/turkmen-nlp/turkmenfst"
	"github.com/turkmen-nlp/turkmenfst/internal/config"
)

// Version is set at build time with -ldflags.
var Version = "v0.3.0"

var (
	cfgFile string
	verbose bool
	format  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "turkmenfst",
	Short: "Turkmen morphological generator and analyzer",
	Long: `turkmenfst inflects Turkmen nouns and verbs and decomposes surface
words into stem and suffixes.

Nouns are declined for number, possessor and case; verbs are conjugated
in 18 tenses and moods. Analysis regenerates every candidate stem from
the lexicon and keeps the forms that reproduce the input.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "turkmenfst %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.turkmenfst/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("lexicon", "", "path to the lexicon file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("lexicon", rootCmd.PersistentFlags().Lookup("lexicon"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	config.Prepare(viper.GetViper(), cfgFile)
	if err := config.Read(viper.GetViper()); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		return
	}
	if verbose && viper.ConfigFileUsed() != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// currentConfig decodes the merged configuration.
func currentConfig() (config.Config, error) {
	return config.Decode(viper.GetViper())
}

// loadEngine loads the configured lexicon.
func loadEngine() (*turkmenfst.Engine, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading lexicon: %s\n", cfg.Lexicon)
	}
	e, err := turkmenfst.New(cfg.Lexicon, cfg.Options())
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d entries, %d analyzer workers\n", e.Lexicon().Len(), e.Analyzer().Workers())
	}
	return e, nil
}
