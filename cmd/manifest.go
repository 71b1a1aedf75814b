package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// manifestCmd represents the manifest command
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "List QMDL captures on the device",
	Long:  `Fetches the capture manifest: all finalized captures plus the active one, if any.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		manifest, err := api.GetManifest()
		if err != nil {
			fmt.Printf("Error fetching manifest: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(manifest); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTART\tLAST MESSAGE\tQMDL SIZE\tANALYSIS SIZE\tSTATE")
		fmt.Fprintln(w, "----\t-----\t------------\t---------\t-------------\t-----")

		for _, entry := range manifest.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				entry.Name,
				entry.StartTime,
				entry.LastMessageTime,
				humanize.IBytes(uint64(entry.QmdlSizeBytes)),
				humanize.IBytes(uint64(entry.AnalysisSizeBytes)),
				"finalized",
			)
		}
		if cur := manifest.CurrentEntry; cur != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cur.Name,
				cur.StartTime,
				cur.LastMessageTime,
				humanize.IBytes(uint64(cur.QmdlSizeBytes)),
				humanize.IBytes(uint64(cur.AnalysisSizeBytes)),
				"recording",
			)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)
}
