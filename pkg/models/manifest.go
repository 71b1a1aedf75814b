package models

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ManifestEntry holds the metadata the device tracks for a single QMDL
// capture file.
type ManifestEntry struct {
	Name              string `json:"name"`
	StartTime         string `json:"start_time"`
	LastMessageTime   string `json:"last_message_time"`
	QmdlSizeBytes     int64  `json:"qmdl_size_bytes"`
	AnalysisSizeBytes int64  `json:"analysis_size_bytes"`
}

// Manifest lists every finalized QMDL capture on the device, plus the active
// capture if a recording is in progress. Entries keep the server's order.
type Manifest struct {
	Entries      []ManifestEntry `json:"entries"`
	CurrentEntry *ManifestEntry  `json:"current_entry"`
}

// ParseManifest decodes the /api/qmdl-manifest response body. Unknown or
// missing fields anywhere in the document fail the whole parse.
func ParseManifest(data []byte) (*Manifest, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	rawEntries, err := obj.array("entries")
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	manifest := &Manifest{Entries: make([]ManifestEntry, 0, len(rawEntries))}
	for i, raw := range rawEntries {
		entry, err := parseManifestEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("manifest: entries[%d]: %w", i, err)
		}
		manifest.Entries = append(manifest.Entries, *entry)
	}

	if raw := obj.nullable("current_entry"); raw != nil {
		entry, err := parseManifestEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("manifest: current_entry: %w", err)
		}
		manifest.CurrentEntry = entry
	}

	if err := obj.done(); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return manifest, nil
}

func parseManifestEntry(data jsoniter.RawMessage) (*ManifestEntry, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	var entry ManifestEntry
	if entry.Name, err = obj.string("name"); err != nil {
		return nil, err
	}
	if entry.StartTime, err = obj.string("start_time"); err != nil {
		return nil, err
	}
	if entry.LastMessageTime, err = obj.string("last_message_time"); err != nil {
		return nil, err
	}
	if entry.QmdlSizeBytes, err = obj.int64("qmdl_size_bytes"); err != nil {
		return nil, err
	}
	if entry.AnalysisSizeBytes, err = obj.int64("analysis_size_bytes"); err != nil {
		return nil, err
	}
	if err := obj.done(); err != nil {
		return nil, err
	}
	return &entry, nil
}
