package client

import (
	"bytes"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
)

// newTestClient points a Client at the given httptest server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parsing server URL: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("splitting host/port: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parsing port: %v", err)
	}
	return New(host, port)
}

const manifestBody = `{
	"entries": [
		{"name": "cap1", "start_time": "t0", "last_message_time": "t1",
		 "qmdl_size_bytes": 100, "analysis_size_bytes": 10}
	],
	"current_entry": {"name": "cap2", "start_time": "t2", "last_message_time": "t3",
		"qmdl_size_bytes": 5, "analysis_size_bytes": 0}
}`

const statsBody = `{
	"disk_stats": {"partition": "ubi0:usrfs", "total_size": "214.7M",
		"used_size": "17.5M", "available_size": "197.2M",
		"used_percent": "8%", "mounted_on": "/data"},
	"memory_stats": {"total": "159.9M", "used": "142.3M", "free": "17.6M"}
}`

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	qmdlPayload := []byte{0x10, 0x00, 0xde, 0xad}
	var startMethod, stopMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/qmdl-manifest":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(manifestBody))
		case "/api/system-stats":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(statsBody))
		case "/api/qmdl/cap1":
			_, _ = w.Write(qmdlPayload)
		case "/api/pcap/cap1":
			_, _ = w.Write([]byte("pcap-bytes"))
		case "/api/analysis-report/cap1":
			_, _ = w.Write([]byte("report-bytes"))
		case "/api/start-recording":
			startMethod = r.Method
		case "/api/stop-recording":
			stopMethod = r.Method
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server)

	manifest, err := c.GetManifest()
	if err != nil {
		t.Fatalf("GetManifest returned error: %v", err)
	}
	if len(manifest.Entries) != 1 || manifest.Entries[0].Name != "cap1" {
		t.Fatalf("manifest entries = %#v, want 1 entry named cap1", manifest.Entries)
	}
	if manifest.CurrentEntry == nil || manifest.CurrentEntry.Name != "cap2" {
		t.Fatalf("CurrentEntry = %#v, want cap2", manifest.CurrentEntry)
	}

	active, err := c.ActiveRecording()
	if err != nil {
		t.Fatalf("ActiveRecording returned error: %v", err)
	}
	if !active {
		t.Fatal("ActiveRecording = false, want true")
	}

	stats, err := c.GetSystemStats()
	if err != nil {
		t.Fatalf("GetSystemStats returned error: %v", err)
	}
	if stats.DiskStats.TotalSize != 225129267 {
		t.Fatalf("TotalSize = %d, want 225129267", stats.DiskStats.TotalSize)
	}
	if stats.DiskStats.UsedPercent != 8 {
		t.Fatalf("UsedPercent = %d, want 8", stats.DiskStats.UsedPercent)
	}

	qmdl, err := c.GetQmdlFile("cap1")
	if err != nil {
		t.Fatalf("GetQmdlFile returned error: %v", err)
	}
	if !bytes.Equal(qmdl, qmdlPayload) {
		t.Fatalf("GetQmdlFile = %v, want %v", qmdl, qmdlPayload)
	}

	pcap, err := c.GetPcapFile("cap1")
	if err != nil {
		t.Fatalf("GetPcapFile returned error: %v", err)
	}
	if string(pcap) != "pcap-bytes" {
		t.Fatalf("GetPcapFile = %q, want %q", pcap, "pcap-bytes")
	}

	report, err := c.GetAnalysisReport("cap1")
	if err != nil {
		t.Fatalf("GetAnalysisReport returned error: %v", err)
	}
	if string(report) != "report-bytes" {
		t.Fatalf("GetAnalysisReport = %q, want %q", report, "report-bytes")
	}

	if err := c.StartRecording(); err != nil {
		t.Fatalf("StartRecording returned error: %v", err)
	}
	if startMethod != http.MethodPost {
		t.Fatalf("start-recording method = %q, want POST", startMethod)
	}

	if err := c.StopRecording(); err != nil {
		t.Fatalf("StopRecording returned error: %v", err)
	}
	if stopMethod != http.MethodPost {
		t.Fatalf("stop-recording method = %q, want POST", stopMethod)
	}
}

func TestClient_ActiveRecordingFalse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entries": [], "current_entry": null}`))
	}))
	t.Cleanup(server.Close)

	active, err := newTestClient(t, server).ActiveRecording()
	if err != nil {
		t.Fatalf("ActiveRecording returned error: %v", err)
	}
	if active {
		t.Fatal("ActiveRecording = true, want false")
	}
}

func TestClient_StatusErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server)

	if _, err := c.GetManifest(); err == nil {
		t.Fatal("GetManifest succeeded against failing server")
	}
	if _, err := c.ActiveRecording(); err == nil {
		t.Fatal("ActiveRecording succeeded against failing server")
	}
	if _, err := c.GetSystemStats(); err == nil {
		t.Fatal("GetSystemStats succeeded against failing server")
	}
	if _, err := c.GetQmdlFile("x"); err == nil {
		t.Fatal("GetQmdlFile succeeded against failing server")
	}
	if _, err := c.GetPcapFile("x"); err == nil {
		t.Fatal("GetPcapFile succeeded against failing server")
	}
	if _, err := c.GetAnalysisReport("x"); err == nil {
		t.Fatal("GetAnalysisReport succeeded against failing server")
	}
	if err := c.StartRecording(); err == nil {
		t.Fatal("StartRecording succeeded against failing server")
	}

	// Stopping with nothing active yields a 500 from the device; the error
	// passes through undifferentiated.
	err := c.StopRecording()
	if err == nil {
		t.Fatal("StopRecording succeeded against failing server")
	}
	if !strings.Contains(err.Error(), "internal failure") {
		t.Fatalf("StopRecording error %q does not carry the server response", err)
	}
}

func TestClient_FileNameIsEscaped(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
	}))
	t.Cleanup(server.Close)

	if _, err := newTestClient(t, server).GetQmdlFile("a b/c"); err != nil {
		t.Fatalf("GetQmdlFile returned error: %v", err)
	}
	if !strings.HasPrefix(gotPath, "/api/qmdl/") || strings.Contains(gotPath, " ") {
		t.Fatalf("request path = %q, want escaped name under /api/qmdl/", gotPath)
	}
}
