package system_healthcheck

import (
	"context"
	"fmt"
	"time"

	"projecthub/internal/cache"
	"projecthub/internal/storage"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HostStats struct {
	CPUPercent        float64 `json:"cpuPercent"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
}

type HealthcheckService struct{}

// CheckLiveness probes the database and cache. Either probe failing makes the
// process unhealthy.
func (s *HealthcheckService) CheckLiveness() error {
	sqlDb, err := storage.GetDb().DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if err := sqlDb.Ping(); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client := cache.GetCache()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("cache is unreachable: %w", err)
	}

	return nil
}

// GetHostStats samples host CPU, memory and root-disk usage.
func (s *HealthcheckService) GetHostStats() (*HostStats, error) {
	memoryStats, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	diskStats, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("failed to read disk stats: %w", err)
	}

	stats := &HostStats{
		MemoryUsedPercent: memoryStats.UsedPercent,
		DiskUsedPercent:   diskStats.UsedPercent,
	}

	cpuPercents, err := cpu.Percent(0, false)
	if err == nil && len(cpuPercents) > 0 {
		stats.CPUPercent = cpuPercents[0]
	}

	return stats, nil
}
