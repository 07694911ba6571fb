// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"firestige.xyz/dscptos/internal/config"
	"firestige.xyz/dscptos/internal/log"
	"firestige.xyz/dscptos/internal/table"
)

var (
	// Global flags
	configFile string

	cfg *config.Config
)

// rootCmd generates the conversion table when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dscptos",
	Short: "Generate the DSCP to IP ToS conversion table",
	Long: `dscptos writes a CSV table mapping well-known DSCP code points to their
IP ToS byte: binary, hex and decimal forms, the precedence and delay/throughput/
reliability flags, and the DSCP class name (csN, afXY, ef).

The table is written to dscp_tos_conv_table.csv in the working directory.`,
	Version:           "0.1.0",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cfg)
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (optional)")

	rootCmd.AddCommand(verifyCmd)
}

// setup loads configuration and initializes logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := log.Init(c.Log); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	cfg = c
	return nil
}

func runGenerate(cfg *config.Config) error {
	logger := log.GetLogger()

	tbl, err := table.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate table: %w", err)
	}
	for _, row := range tbl {
		logger.WithFields(logrus.Fields{
			"dscp":  row.DSCPDec,
			"tos":   row.ToSHex,
			"class": row.Class,
		}).Debug("row built")
	}

	if err := table.WriteFile(cfg.Output.Path, tbl); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"path": cfg.Output.Path,
		"rows": len(tbl),
	}).Info("conversion table written")
	return nil
}
