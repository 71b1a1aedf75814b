package client

import (
	"fmt"

	"github.com/jmg292/go-rayhunter/pkg/models"
)

// GetManifest fetches the QMDL manifest, which tracks the names of finalized
// captures and the active capture if one is running.
func (c *Client) GetManifest() (*models.Manifest, error) {
	resp, err := c.HTTP.R().Get("/api/qmdl-manifest")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to get manifest: %s", resp.String())
	}
	return models.ParseManifest(resp.Body())
}

// ActiveRecording reports whether a recording is currently in progress. Each
// call fetches a fresh manifest; nothing is cached, so two consecutive calls
// may disagree if the device's state changed in between.
func (c *Client) ActiveRecording() (bool, error) {
	manifest, err := c.GetManifest()
	if err != nil {
		return false, err
	}
	return manifest.CurrentEntry != nil, nil
}
