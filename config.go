package main

import (
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"

	"github.com/emberlabs/emberd/chaincfg"
)

const (
	defaultLogDirname  = "logs"
	defaultLogFilename = "emberd.log"
	defaultDebugLevel  = "info"
)

// config defines the configuration options for emberd.
type config struct {
	TestNet     bool
	LegacyMagic bool
	DebugLevel  string
	LogDir      string
	NoFileLog   bool
}

// selection builds the active-network cell from the configured flags.  The
// cell is created once here, before any subsystem starts, and passed by
// reference afterwards; nothing mutates it past this point.
func (c *config) selection() *chaincfg.Selection {
	net := chaincfg.MainNet
	if c.TestNet {
		net = chaincfg.TestNet
	}
	variant := chaincfg.PreferredMagic
	if c.LegacyMagic {
		variant = chaincfg.LegacyMagic
	}
	return chaincfg.NewSelection(net, variant)
}

// logFile returns the path of the log file, namespaced by network so main
// and test runs do not interleave.
func (c *config) logFile(sel *chaincfg.Selection) string {
	return filepath.Join(c.LogDir, sel.Params().Name, defaultLogFilename)
}

// validate checks the configuration for values that cannot be acted on.
func (c *config) validate() error {
	if _, ok := btclog.LevelFromString(c.DebugLevel); !ok {
		return errors.Errorf("the specified debug level [%v] is invalid",
			c.DebugLevel)
	}
	return nil
}
