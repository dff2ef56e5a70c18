package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvDashboardLeaderboardLimit    = "TREAD_DASHBOARD_LEADERBOARD_LIMIT"
	EnvDashboardLeaderboardMaxLimit = "TREAD_DASHBOARD_LEADERBOARD_MAX_LIMIT"
	EnvDashboardDefaultRangeDays    = "TREAD_DASHBOARD_DEFAULT_RANGE_DAYS"
)

// DashboardConfig holds dashboard presentation settings: leaderboard size
// bounds and the default trailing claim window applied to the overview.
type DashboardConfig struct {
	LeaderboardLimit    int `toml:"leaderboard_limit"`
	LeaderboardMaxLimit int `toml:"leaderboard_max_limit"`
	DefaultRangeDays    int `toml:"default_range_days"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *DashboardConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *DashboardConfig) Merge(overlay *DashboardConfig) {
	if overlay.LeaderboardLimit != 0 {
		c.LeaderboardLimit = overlay.LeaderboardLimit
	}
	if overlay.LeaderboardMaxLimit != 0 {
		c.LeaderboardMaxLimit = overlay.LeaderboardMaxLimit
	}
	if overlay.DefaultRangeDays != 0 {
		c.DefaultRangeDays = overlay.DefaultRangeDays
	}
}

func (c *DashboardConfig) loadDefaults() {
	if c.LeaderboardLimit == 0 {
		c.LeaderboardLimit = 10
	}
	if c.LeaderboardMaxLimit == 0 {
		c.LeaderboardMaxLimit = 100
	}
	if c.DefaultRangeDays == 0 {
		c.DefaultRangeDays = 30
	}
}

func (c *DashboardConfig) loadEnv() {
	if v := os.Getenv(EnvDashboardLeaderboardLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LeaderboardLimit = n
		}
	}
	if v := os.Getenv(EnvDashboardLeaderboardMaxLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LeaderboardMaxLimit = n
		}
	}
	if v := os.Getenv(EnvDashboardDefaultRangeDays); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DefaultRangeDays = n
		}
	}
}

func (c *DashboardConfig) validate() error {
	if c.LeaderboardLimit < 1 {
		return fmt.Errorf("leaderboard_limit must be positive")
	}
	if c.LeaderboardMaxLimit < c.LeaderboardLimit {
		return fmt.Errorf("leaderboard_max_limit cannot be below leaderboard_limit")
	}
	if c.DefaultRangeDays < 0 {
		return fmt.Errorf("default_range_days cannot be negative")
	}
	return nil
}
