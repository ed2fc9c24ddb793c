// Package drives lists the mounted volumes shown as drive roots in the sidebar.
package drives

import (
	"context"
	"path/filepath"

	"github.com/rivo/tview"
	"github.com/shirou/gopsutil/v3/disk"
)

var diskPartitions = disk.PartitionsWithContext

type Drive struct {
	Mountpoint string
	Device     string
	Fstype     string
}

func (d Drive) Label() string {
	mountpoint := tview.Escape(d.Mountpoint)
	if d.Fstype == "" {
		return mountpoint
	}
	return mountpoint + " [darkgray::i](" + tview.Escape(d.Fstype) + ")[-::-]"
}

// List returns physical mount points in the order the OS reports them.
func List(ctx context.Context) ([]Drive, error) {
	partitions, err := diskPartitions(ctx, false)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(partitions))
	drives := make([]Drive, 0, len(partitions))
	for _, p := range partitions {
		if p.Mountpoint == "" || seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true
		drives = append(drives, Drive{
			Mountpoint: p.Mountpoint,
			Device:     p.Device,
			Fstype:     p.Fstype,
		})
	}
	return drives, nil
}

// Root returns the root of the volume holding dir, used when partitions can not be read.
func Root(dir string) Drive {
	return Drive{Mountpoint: filepath.VolumeName(dir) + string(filepath.Separator)}
}
