package models

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// DiskStats describes usage of the filesystem the device records to. The
// device reports sizes as megabyte strings (e.g. "214.7M") and percentages
// with a trailing "%"; both are converted to plain integers here.
type DiskStats struct {
	Partition     string `json:"partition"`
	TotalSize     int64  `json:"total_size"`
	UsedSize      int64  `json:"used_size"`
	AvailableSize int64  `json:"available_size"`
	UsedPercent   int    `json:"used_percent"`
	MountedOn     string `json:"mounted_on"`
}

// MemoryStats describes system memory utilization in bytes.
type MemoryStats struct {
	Total int64 `json:"total"`
	Used  int64 `json:"used"`
	Free  int64 `json:"free"`
}

// SystemStats aggregates disk and memory utilization as reported by
// /api/system-stats.
type SystemStats struct {
	DiskStats   DiskStats   `json:"disk_stats"`
	MemoryStats MemoryStats `json:"memory_stats"`
}

// ParseSystemStats decodes the /api/system-stats response body.
func ParseSystemStats(data []byte) (*SystemStats, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("system stats: %w", err)
	}
	rawDisk, err := obj.take("disk_stats")
	if err != nil {
		return nil, fmt.Errorf("system stats: %w", err)
	}
	rawMemory, err := obj.take("memory_stats")
	if err != nil {
		return nil, fmt.Errorf("system stats: %w", err)
	}
	if err := obj.done(); err != nil {
		return nil, fmt.Errorf("system stats: %w", err)
	}

	disk, err := parseDiskStats(rawDisk)
	if err != nil {
		return nil, fmt.Errorf("system stats: disk_stats: %w", err)
	}
	memory, err := parseMemoryStats(rawMemory)
	if err != nil {
		return nil, fmt.Errorf("system stats: memory_stats: %w", err)
	}
	return &SystemStats{DiskStats: *disk, MemoryStats: *memory}, nil
}

func parseDiskStats(data jsoniter.RawMessage) (*DiskStats, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	var stats DiskStats
	if stats.Partition, err = obj.string("partition"); err != nil {
		return nil, err
	}
	if stats.TotalSize, err = sizeField(obj, "total_size"); err != nil {
		return nil, err
	}
	if stats.UsedSize, err = sizeField(obj, "used_size"); err != nil {
		return nil, err
	}
	if stats.AvailableSize, err = sizeField(obj, "available_size"); err != nil {
		return nil, err
	}
	pct, err := obj.string("used_percent")
	if err != nil {
		return nil, err
	}
	if stats.UsedPercent, err = ParsePercent(pct); err != nil {
		return nil, fmt.Errorf("field %q: %w", "used_percent", err)
	}
	if stats.MountedOn, err = obj.string("mounted_on"); err != nil {
		return nil, err
	}
	if err := obj.done(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func parseMemoryStats(data jsoniter.RawMessage) (*MemoryStats, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	var stats MemoryStats
	if stats.Total, err = sizeField(obj, "total"); err != nil {
		return nil, err
	}
	if stats.Used, err = sizeField(obj, "used"); err != nil {
		return nil, err
	}
	if stats.Free, err = sizeField(obj, "free"); err != nil {
		return nil, err
	}
	if err := obj.done(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// sizeField reads a megabyte-suffixed string field and converts it to bytes.
func sizeField(obj *object, key string) (int64, error) {
	s, err := obj.string(key)
	if err != nil {
		return 0, err
	}
	n, err := ParseSize(s)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return n, nil
}
