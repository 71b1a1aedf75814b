package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/jmg292/go-rayhunter/internal/client"
	"github.com/jmg292/go-rayhunter/internal/config"
)

// Variables to hold flag values
var (
	deviceHost string
	devicePort int
)

// Helper to initialize a client from the saved configuration.
func setupClient() *client.Client {
	host := viper.GetString("host")
	port := viper.GetInt("port")

	if host == "" || port == 0 {
		fmt.Println("Error: No device configured. Please run 'rayhunter-cli configure' first.")
		os.Exit(1)
	}

	var opts []client.Option
	if verbose {
		opts = append(opts, client.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}
	return client.New(host, port, opts...)
}

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save the target Rayhunter device",
	Long: `Verifies connectivity to the device at the given host and port, then
saves the target locally so other commands know where to connect.

Example:
  rayhunter-cli configure --host 192.168.1.1 --port 8080`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Checking device at http://%s:%d ...\n", deviceHost, devicePort)

		api := client.New(deviceHost, devicePort)
		if _, err := api.GetManifest(); err != nil {
			log.Fatalf("Fatal: Device check failed: %v", err)
		}

		fmt.Println("Device reachable. Saving configuration...")

		if err := config.SaveTarget(deviceHost, devicePort); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Println("Target saved. You can now run commands like './rayhunter-cli manifest'.")
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().StringVar(&deviceHost, "host", "", "Device hostname or IP (e.g. 192.168.1.1)")
	configureCmd.Flags().IntVar(&devicePort, "port", 8080, "Device API port")

	_ = configureCmd.MarkFlagRequired("host")
}
