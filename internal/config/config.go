// Package config loads game tuning from an optional .env file and HOOPS_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the tunable surface of the game. Zero values are never used;
// Load and Default always return a fully populated Config.
type Config struct {
	// Round
	RoundLength    time.Duration
	FinalOverlay   time.Duration
	LeaderboardTop int // rows shown in the HUD; the board itself is unbounded

	// Spawning and shooting
	SpawnCooldown  time.Duration
	MaxHold        time.Duration
	MinPower       float64
	MaxPower       float64
	LaunchAngleDeg float64
	BallLifetime   time.Duration

	// Presentation
	WindowWidth  int
	WindowHeight int
	ShowSensor   bool

	// Seed drives the celebration burst RNG. 0 means time based.
	Seed int64
}

// Default returns the stock arcade tuning.
func Default() Config {
	return Config{
		RoundLength:    15 * time.Second,
		FinalOverlay:   3 * time.Second,
		LeaderboardTop: 8,
		SpawnCooldown:  300 * time.Millisecond,
		MaxHold:        1000 * time.Millisecond,
		MinPower:       200,
		MaxPower:       500,
		LaunchAngleDeg: 60,
		BallLifetime:   6 * time.Second,
		WindowWidth:    1280,
		WindowHeight:   720,
	}
}

// Load reads .env (if present) and then the process environment over the
// defaults. A malformed variable is an error naming the variable.
func Load() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv applies variables from getenv over Default.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	e := envReader{getenv: getenv}

	cfg.RoundLength = e.duration("HOOPS_ROUND_LENGTH", cfg.RoundLength)
	cfg.FinalOverlay = e.duration("HOOPS_FINAL_OVERLAY", cfg.FinalOverlay)
	cfg.LeaderboardTop = e.int("HOOPS_LEADERBOARD_TOP", cfg.LeaderboardTop)
	cfg.SpawnCooldown = e.duration("HOOPS_SPAWN_COOLDOWN", cfg.SpawnCooldown)
	cfg.MaxHold = e.duration("HOOPS_MAX_HOLD", cfg.MaxHold)
	cfg.MinPower = e.float("HOOPS_MIN_POWER", cfg.MinPower)
	cfg.MaxPower = e.float("HOOPS_MAX_POWER", cfg.MaxPower)
	cfg.LaunchAngleDeg = e.float("HOOPS_LAUNCH_ANGLE", cfg.LaunchAngleDeg)
	cfg.BallLifetime = e.duration("HOOPS_BALL_LIFETIME", cfg.BallLifetime)
	cfg.WindowWidth = e.int("HOOPS_WINDOW_WIDTH", cfg.WindowWidth)
	cfg.WindowHeight = e.int("HOOPS_WINDOW_HEIGHT", cfg.WindowHeight)
	cfg.ShowSensor = e.bool("HOOPS_SHOW_SENSOR", cfg.ShowSensor)
	cfg.Seed = int64(e.int("HOOPS_SEED", int(cfg.Seed)))

	if e.err != nil {
		return Config{}, e.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.RoundLength < time.Second:
		return fmt.Errorf("round length %s: must be at least 1s", c.RoundLength)
	case c.MaxHold <= 0:
		return fmt.Errorf("max hold %s: must be positive", c.MaxHold)
	case c.MinPower < 0 || c.MaxPower < c.MinPower:
		return fmt.Errorf("power range [%.0f, %.0f]: must satisfy 0 <= min <= max", c.MinPower, c.MaxPower)
	case c.SpawnCooldown < 0:
		return fmt.Errorf("spawn cooldown %s: must not be negative", c.SpawnCooldown)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window %dx%d: must be positive", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// envReader keeps the first parse error so callers can read every variable
// and check once.
type envReader struct {
	getenv func(string) string
	err    error
}

func (e *envReader) fail(key, raw string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("config %s=%q: %w", key, raw, err)
	}
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	raw := e.getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return d
}

func (e *envReader) int(key string, def int) int {
	raw := e.getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return n
}

func (e *envReader) float(key string, def float64) float64 {
	raw := e.getenv(key)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return f
}

func (e *envReader) bool(key string, def bool) bool {
	raw := e.getenv(key)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return b
}
