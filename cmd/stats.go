package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show device disk and memory utilization",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		stats, err := api.GetSystemStats()
		if err != nil {
			fmt.Printf("Error fetching system stats: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(stats); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		disk := stats.DiskStats
		mem := stats.MemoryStats

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Disk (%s on %s)\n", disk.Partition, disk.MountedOn)
		fmt.Fprintf(w, "  total:\t%s\n", humanize.IBytes(uint64(disk.TotalSize)))
		fmt.Fprintf(w, "  used:\t%s (%d%%)\n", humanize.IBytes(uint64(disk.UsedSize)), disk.UsedPercent)
		fmt.Fprintf(w, "  available:\t%s\n", humanize.IBytes(uint64(disk.AvailableSize)))
		fmt.Fprintln(w, "Memory")
		fmt.Fprintf(w, "  total:\t%s\n", humanize.IBytes(uint64(mem.Total)))
		fmt.Fprintf(w, "  used:\t%s\n", humanize.IBytes(uint64(mem.Used)))
		fmt.Fprintf(w, "  free:\t%s\n", humanize.IBytes(uint64(mem.Free)))
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
