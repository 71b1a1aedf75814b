package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var outputFile string

// Parent Command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download capture files from the device",
	Long:  `Download QMDL captures, pcap renditions, or analysis reports to disk.`,
}

// saveFile writes downloaded bytes to the target path, deriving a default
// name from the capture name when --output is not set.
func saveFile(name, ext string, data []byte) {
	target := outputFile
	if target == "" {
		target = name + "." + ext
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %d bytes to %s\n", len(data), target)
}

var fetchQmdlCmd = &cobra.Command{
	Use:     "qmdl NAME",
	Short:   "Download a raw QMDL capture",
	Args:    cobra.ExactArgs(1),
	Example: `  rayhunter-cli fetch qmdl 1716400000 --output capture.qmdl`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Fetching QMDL file for capture %s ...\n", args[0])

		data, err := api.GetQmdlFile(args[0])
		if err != nil {
			fmt.Printf("Error fetching QMDL file: %v\n", err)
			os.Exit(1)
		}

		saveFile(args[0], "qmdl", data)
	},
}

var fetchPcapCmd = &cobra.Command{
	Use:     "pcap NAME",
	Short:   "Download a capture transcoded to pcap",
	Long:    `The device transcodes QMDL to pcap on demand, so this can take a while for large captures.`,
	Args:    cobra.ExactArgs(1),
	Example: `  rayhunter-cli fetch pcap 1716400000`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Fetching pcap file for capture %s ...\n", args[0])

		data, err := api.GetPcapFile(args[0])
		if err != nil {
			fmt.Printf("Error fetching pcap file: %v\n", err)
			os.Exit(1)
		}

		saveFile(args[0], "pcap", data)
	},
}

var fetchReportCmd = &cobra.Command{
	Use:     "report NAME",
	Short:   "Download a capture's analysis report",
	Args:    cobra.ExactArgs(1),
	Example: `  rayhunter-cli fetch report 1716400000`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Fetching analysis report for capture %s ...\n", args[0])

		data, err := api.GetAnalysisReport(args[0])
		if err != nil {
			fmt.Printf("Error fetching analysis report: %v\n", err)
			os.Exit(1)
		}

		saveFile(args[0], "ndjson", data)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.AddCommand(fetchQmdlCmd)
	fetchCmd.AddCommand(fetchPcapCmd)
	fetchCmd.AddCommand(fetchReportCmd)

	fetchCmd.PersistentFlags().StringVar(&outputFile, "output", "", "Output filename (default derived from the capture name)")
}
