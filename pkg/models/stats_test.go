package models

import (
	"strings"
	"testing"
)

const statsFixture = `{
	"disk_stats": {
		"partition": "ubi0:usrfs",
		"total_size": "214.7M",
		"used_size": "17.5M",
		"available_size": "197.2M",
		"used_percent": "8%",
		"mounted_on": "/data"
	},
	"memory_stats": {
		"total": "159.9M",
		"used": "142.3M",
		"free": "17.6M"
	}
}`

func TestParseSystemStats(t *testing.T) {
	stats, err := ParseSystemStats([]byte(statsFixture))
	if err != nil {
		t.Fatalf("ParseSystemStats returned error: %v", err)
	}

	disk := stats.DiskStats
	if disk.Partition != "ubi0:usrfs" {
		t.Fatalf("Partition = %q, want %q", disk.Partition, "ubi0:usrfs")
	}
	if disk.TotalSize != 225129267 {
		t.Fatalf("TotalSize = %d, want 225129267", disk.TotalSize)
	}
	if disk.UsedSize != 18350080 {
		t.Fatalf("UsedSize = %d, want 18350080", disk.UsedSize)
	}
	if disk.UsedPercent != 8 {
		t.Fatalf("UsedPercent = %d, want 8", disk.UsedPercent)
	}
	if disk.MountedOn != "/data" {
		t.Fatalf("MountedOn = %q, want %q", disk.MountedOn, "/data")
	}

	mem := stats.MemoryStats
	wantTotal, err := ParseSize("159.9M")
	if err != nil {
		t.Fatalf("ParseSize returned error: %v", err)
	}
	if mem.Total != wantTotal {
		t.Fatalf("memory Total = %d, want %d", mem.Total, wantTotal)
	}
	if mem.Used == 0 || mem.Free == 0 {
		t.Fatalf("memory Used/Free = %d/%d, want non-zero", mem.Used, mem.Free)
	}
}

func TestParseSystemStats_BadSuffixPropagates(t *testing.T) {
	body := strings.Replace(statsFixture, `"17.5M"`, `"17.5G"`, 1)
	_, err := ParseSystemStats([]byte(body))
	if err == nil {
		t.Fatal("ParseSystemStats succeeded, want conversion error")
	}
	if !strings.Contains(err.Error(), "used_size") {
		t.Fatalf("error %q does not name the failing field", err)
	}
	if !strings.Contains(err.Error(), "G") {
		t.Fatalf("error %q does not name the bad suffix", err)
	}
}

func TestParseSystemStats_MissingSection(t *testing.T) {
	_, err := ParseSystemStats([]byte(`{"disk_stats": {}}`))
	if err == nil {
		t.Fatal("ParseSystemStats succeeded, want missing-field error")
	}
	if !strings.Contains(err.Error(), "memory_stats") {
		t.Fatalf("error %q does not name the missing section", err)
	}
}

func TestParseSystemStats_UnknownDiskField(t *testing.T) {
	body := strings.Replace(statsFixture, `"mounted_on": "/data"`,
		`"mounted_on": "/data", "inodes": "12%"`, 1)
	_, err := ParseSystemStats([]byte(body))
	if err == nil {
		t.Fatal("ParseSystemStats succeeded, want unknown-field error")
	}
	if !strings.Contains(err.Error(), "inodes") {
		t.Fatalf("error %q does not name the unknown field", err)
	}
}
