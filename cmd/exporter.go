package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/jmg292/go-rayhunter/internal/client"
)

// Variables to hold flag values
var (
	expHost       string
	expPort       int
	expListenPort string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *client.Client
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	collector := &RayhunterCollector{Client: p.api}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expListenPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Rayhunter Exporter listening on %s", addr)

	// Blocking call to listen
	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR LOGIC ---

type RayhunterCollector struct {
	Client *client.Client
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"rayhunter_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"rayhunter_scrape_duration_seconds", "Time taken to scrape the device API.", nil, nil,
	)
	recordingActiveDesc = prometheus.NewDesc(
		"rayhunter_recording_active", "Whether a capture is currently in progress.", nil, nil,
	)
	capturesDesc = prometheus.NewDesc(
		"rayhunter_captures", "Number of finalized captures on the device.", nil, nil,
	)
	captureBytesDesc = prometheus.NewDesc(
		"rayhunter_capture_bytes", "Total size of capture files by kind.", []string{"kind"}, nil,
	)
	diskBytesDesc = prometheus.NewDesc(
		"rayhunter_disk_bytes", "Disk space by state.", []string{"partition", "mounted_on", "state"}, nil,
	)
	diskUsedPercentDesc = prometheus.NewDesc(
		"rayhunter_disk_used_percent", "Percentage of disk space in use.", []string{"partition", "mounted_on"}, nil,
	)
	memoryBytesDesc = prometheus.NewDesc(
		"rayhunter_memory_bytes", "Memory by state.", []string{"state"}, nil,
	)
)

func (c *RayhunterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- recordingActiveDesc
	ch <- capturesDesc
	ch <- captureBytesDesc
	ch <- diskBytesDesc
	ch <- diskUsedPercentDesc
	ch <- memoryBytesDesc
}

func (c *RayhunterCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	// 1. Manifest: recording state, capture counts and sizes
	if manifest, err := c.Client.GetManifest(); err == nil {
		active := 0.0
		if manifest.CurrentEntry != nil {
			active = 1.0
		}
		ch <- prometheus.MustNewConstMetric(recordingActiveDesc, prometheus.GaugeValue, active)
		ch <- prometheus.MustNewConstMetric(capturesDesc, prometheus.GaugeValue, float64(len(manifest.Entries)))

		var qmdlBytes, analysisBytes float64
		for _, entry := range manifest.Entries {
			qmdlBytes += float64(entry.QmdlSizeBytes)
			analysisBytes += float64(entry.AnalysisSizeBytes)
		}
		ch <- prometheus.MustNewConstMetric(captureBytesDesc, prometheus.GaugeValue, qmdlBytes, "qmdl")
		ch <- prometheus.MustNewConstMetric(captureBytesDesc, prometheus.GaugeValue, analysisBytes, "analysis")
	} else {
		success = 0.0
		log.Printf("Error scraping manifest: %v", err)
	}

	// 2. System stats: disk and memory
	if stats, err := c.Client.GetSystemStats(); err == nil {
		disk := stats.DiskStats
		ch <- prometheus.MustNewConstMetric(diskBytesDesc, prometheus.GaugeValue,
			float64(disk.TotalSize), disk.Partition, disk.MountedOn, "total")
		ch <- prometheus.MustNewConstMetric(diskBytesDesc, prometheus.GaugeValue,
			float64(disk.UsedSize), disk.Partition, disk.MountedOn, "used")
		ch <- prometheus.MustNewConstMetric(diskBytesDesc, prometheus.GaugeValue,
			float64(disk.AvailableSize), disk.Partition, disk.MountedOn, "available")
		ch <- prometheus.MustNewConstMetric(diskUsedPercentDesc, prometheus.GaugeValue,
			float64(disk.UsedPercent), disk.Partition, disk.MountedOn)

		mem := stats.MemoryStats
		ch <- prometheus.MustNewConstMetric(memoryBytesDesc, prometheus.GaugeValue, float64(mem.Total), "total")
		ch <- prometheus.MustNewConstMetric(memoryBytesDesc, prometheus.GaugeValue, float64(mem.Used), "used")
		ch <- prometheus.MustNewConstMetric(memoryBytesDesc, prometheus.GaugeValue, float64(mem.Free), "free")
	} else {
		success = 0.0
		log.Printf("Error scraping system stats: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes Rayhunter device metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Define Service Configuration
		svcConfig := &service.Config{
			Name:        "rayhunter-exporter",
			DisplayName: "Rayhunter Prometheus Exporter",
			Description: "Exposes Rayhunter device metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--host", expHost,
				"--port", fmt.Sprintf("%d", expPort),
				"--listen-port", expListenPort,
			},
		}

		prg := &program{
			api: client.New(expHost, expPort),
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// 2. Handle Service Control Actions (Install, Start, Stop, Uninstall)
		if serviceAction != "" {
			if serviceAction == "install" && expHost == "" {
				log.Fatal("Error: You must provide --host to install the service.")
			}

			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		if expHost == "" {
			log.Fatal("Error: --host is required.")
		}

		// 3. Run the Service (Blocking)
		// This happens when the Service Manager starts the binary, OR when run interactively
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expHost, "host", "", "Device hostname or IP")
	exporterCmd.Flags().IntVar(&expPort, "port", 8080, "Device API port")
	exporterCmd.Flags().StringVar(&expListenPort, "listen-port", "9184", "Port the exporter listens on")

	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
