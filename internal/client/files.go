package client

import "fmt"

// getFile fetches a capture artifact and buffers the whole body in memory.
// Capture files are bounded by the device's flash storage, so this stays
// reasonable.
func (c *Client) getFile(endpoint, name string) ([]byte, error) {
	resp, err := c.HTTP.R().SetPathParam("name", name).Get(endpoint)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to get file %s: %s", name, resp.String())
	}
	return resp.Body(), nil
}

// GetQmdlFile fetches the raw QMDL capture with the given name. Use
// GetManifest to discover capture names.
func (c *Client) GetQmdlFile(name string) ([]byte, error) {
	return c.getFile("/api/qmdl/{name}", name)
}

// GetPcapFile fetches the pcap rendition of the named capture. The device
// transcodes QMDL to pcap on demand, so large captures can take a while; the
// call blocks until the device finishes.
func (c *Client) GetPcapFile(name string) ([]byte, error) {
	return c.getFile("/api/pcap/{name}", name)
}

// GetAnalysisReport fetches the analysis report generated for the named
// capture.
func (c *Client) GetAnalysisReport(name string) ([]byte, error) {
	return c.getFile("/api/analysis-report/{name}", name)
}
