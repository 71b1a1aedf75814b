package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Parent Command
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Control recording on the device",
	Long:  `Start or stop QMDL recording.`,
}

var recordStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new recording",
	Long: `Starts a new QMDL recording. If the device is already recording, it
stops the active capture and begins a new one.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		if err := api.StartRecording(); err != nil {
			fmt.Printf("Error starting recording: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Recording started.")
	},
}

var recordStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active recording",
	Long: `Stops the active QMDL recording. Fails if the device is not
currently recording.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		if err := api.StopRecording(); err != nil {
			fmt.Printf("Error stopping recording: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Recording stopped.")
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.AddCommand(recordStartCmd)
	recordCmd.AddCommand(recordStopCmd)
}
