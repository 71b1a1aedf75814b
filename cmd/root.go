package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/jmg292/go-rayhunter/internal/config"
)

var cfgFile string
var jsonOutput bool
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rayhunter-cli",
	Short: "A CLI for the Rayhunter cellular monitoring device API",
	Long: `Inspect captures, download QMDL/PCAP/analysis files, and control
recordings on a Rayhunter device over its local HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rayhunter-cli.yaml)")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every API request to stderr")
}
