package client

import "fmt"

// StartRecording begins a new capture. If the device is already recording it
// stops the active capture and starts a fresh one; no pre-check is performed
// here.
func (c *Client) StartRecording() error {
	resp, err := c.HTTP.R().Post("/api/start-recording")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("failed to start recording: %s", resp.String())
	}
	return nil
}

// StopRecording ends the active capture. The device answers 500 when nothing
// is recording; that surfaces here as an ordinary status error.
func (c *Client) StopRecording() error {
	resp, err := c.HTTP.R().Post("/api/stop-recording")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("failed to stop recording: %s", resp.String())
	}
	return nil
}
