package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the drill server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the data directory
	Data string
	// DSN points to where phrasecoach stores its own data
	DSN string
	// Driver is the database driver (sqlite or postgres)
	Driver string
	// Version is the current version of server
	Version string
	// Catalog is the path to the drill manifest JSON used to seed the item table
	Catalog string

	// SessionCap is the maximum number of items in one study session.
	// PHRASECOACH_SESSION_CAP (default: 20)
	SessionCap int
	// SoftSpelling maps a lone spelling slip to Good instead of Again.
	// PHRASECOACH_SOFT_SPELLING (default: true)
	SoftSpelling bool
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from PHRASECOACH_* environment variables.
// Values already set by flags are only overridden by non-empty env values.
func (p *Profile) FromEnv() {
	if v := os.Getenv("PHRASECOACH_MODE"); v != "" {
		p.Mode = v
	}
	if v := os.Getenv("PHRASECOACH_DRIVER"); v != "" {
		p.Driver = v
	}
	if v := os.Getenv("PHRASECOACH_DSN"); v != "" {
		p.DSN = v
	}
	if v := os.Getenv("PHRASECOACH_CATALOG"); v != "" {
		p.Catalog = v
	}
	p.SoftSpelling = getEnvOrDefault("PHRASECOACH_SOFT_SPELLING", "true") != "false"
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

// Validate normalizes the profile in place. Out-of-range values are clamped
// to usable defaults rather than rejected.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Driver != "sqlite" && p.Driver != "postgres" {
		p.Driver = "sqlite"
	}

	if p.SessionCap <= 0 {
		p.SessionCap = 20
	}

	if p.Data == "" {
		p.Data = "."
	}
	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		slog.Error("failed to check data dir", slog.String("data", p.Data), slog.String("error", err.Error()))
		return err
	}

	p.Data = dataDir
	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("phrasecoach_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}

	return nil
}
