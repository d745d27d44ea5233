// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the degree-certify CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/degree-certify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the degree-certify CLI.
var rootCmd = &cobra.Command{
	Use:   "degree-certify",
	Short: "Certify graduate transcripts against degree requirements",
	Long: `degree-certify parses graduate transcript text, builds a normalized course
ledger, and evaluates it against a declarative degree-certification policy.

Each transcript yields a per-student report artifact and a row in the
persistent certification summary. The classification rules and numeric
thresholds live in the config file, so other programs can reuse the tool
without code changes.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./degree-certify.yaml or ~/.config/degree-certify/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("degree-certify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "degree-certify"))
		}
	}

	viper.SetEnvPrefix("DEGREE_CERTIFY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the run configuration: program defaults overlaid with
// whatever the config file sets.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetString("program.home_department"); v != "" {
		cfg.Program.HomeDepartment = v
	}
	if v := viper.GetStringSlice("program.research_courses"); len(v) > 0 {
		cfg.Program.ResearchCourses = v
	}
	if v := viper.GetStringSlice("program.non_core_electives"); len(v) > 0 {
		cfg.Program.NonCoreElectives = v
	}
	if v := viper.GetString("program.placeholder_title"); v != "" {
		cfg.Program.PlaceholderTitle = v
	}

	if viper.IsSet("policy.min_core_credits") {
		cfg.Policy.MinCoreCredits = viper.GetFloat64("policy.min_core_credits")
	}
	if viper.IsSet("policy.max_research_applied") {
		cfg.Policy.MaxResearchApplied = viper.GetFloat64("policy.max_research_applied")
	}
	if viper.IsSet("policy.max_level4xx_credits") {
		cfg.Policy.MaxLevel4xxCredits = viper.GetFloat64("policy.max_level4xx_credits")
	}
	if viper.IsSet("policy.min_total_credits") {
		cfg.Policy.MinTotalCredits = viper.GetFloat64("policy.min_total_credits")
	}

	if v := viper.GetString("extraction.backend"); v != "" {
		cfg.Extraction.Backend = v
	}
	if v := viper.GetString("report.output_dir"); v != "" {
		cfg.Report.OutputDir = v
	}
	if v := viper.GetString("report.prepared_by"); v != "" {
		cfg.Report.PreparedBy = v
	}
	if v := viper.GetString("report.filename_suffix"); v != "" {
		cfg.Report.FilenameSuffix = v
	}
	if v := viper.GetString("summary.output_dir"); v != "" {
		cfg.Summary.OutputDir = v
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
