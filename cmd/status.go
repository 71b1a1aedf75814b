package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the device is currently recording",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		active, err := api.ActiveRecording()
		if err != nil {
			fmt.Printf("Error checking recording state: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(map[string]bool{"recording": active}); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if active {
			fmt.Println("Recording in progress.")
		} else {
			fmt.Println("Idle. No active recording.")
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
