// Package client implements an HTTP client for the Rayhunter device API.
//
// Rayhunter is a cellular surveillance detection tool that runs on a mobile
// hotspot and records QMDL baseband captures. This client fetches the capture
// manifest, downloads QMDL/pcap/analysis files, reads system statistics, and
// starts or stops recordings.
//
// # Basic Usage
//
//	api := client.New("192.168.1.1", 8080)
//
//	manifest, err := api.GetManifest()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, entry := range manifest.Entries {
//	    data, err := api.GetQmdlFile(entry.Name)
//	    ...
//	}
//
// Every method performs one blocking HTTP round trip and holds no state
// between calls. Errors come back in three flavors, all unwrapped: transport
// errors from the underlying HTTP client, status errors for non-2xx
// responses, and parse errors from pkg/models. Retry policy is the caller's
// concern.
package client
