package client

import (
	"fmt"

	"github.com/jmg292/go-rayhunter/pkg/models"
)

// GetSystemStats fetches disk and memory utilization for the device, with
// the size strings already converted to byte counts.
func (c *Client) GetSystemStats() (*models.SystemStats, error) {
	resp, err := c.HTTP.R().Get("/api/system-stats")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to get system stats: %s", resp.String())
	}
	return models.ParseSystemStats(resp.Body())
}
