package main

import (
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/emberlabs/emberd/addrmgr"
	"github.com/emberlabs/emberd/blockchain"
	"github.com/emberlabs/emberd/log"
)

var cfg = &config{}

var rootCmd = &cobra.Command{
	Use:   "emberd",
	Short: "Ember network daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return emberMain()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.TestNet, "testnet", false,
		"use the test network")
	rootCmd.PersistentFlags().BoolVar(&cfg.LegacyMagic, "legacymagic", false,
		"frame wire messages with the legacy magic sequence")
	rootCmd.PersistentFlags().StringVarP(&cfg.DebugLevel, "debuglevel", "d",
		defaultDebugLevel, "logging level for all subsystems")
	rootCmd.PersistentFlags().StringVar(&cfg.LogDir, "logdir",
		defaultLogDirname, "directory to log output")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoFileLog, "nofilelog", false,
		"disable file logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// emberMain is the real main function for emberd.  The network selection is
// resolved from configuration before any subsystem is created, preserving
// the single-writer-at-startup contract of the selection cell.
func emberMain() error {
	if err := cfg.validate(); err != nil {
		return err
	}

	activeNet := cfg.selection()

	if !cfg.NoFileLog {
		if err := log.InitLogRotator(cfg.logFile(activeNet)); err != nil {
			return errors.Wrap(err, "unable to initialize file logging")
		}
	}
	defer log.CloseLogRotator()
	log.SetLogLevels(cfg.DebugLevel)

	magic := activeNet.Magic()
	log.EmbrLog.Infof("Version %s", version())
	log.EmbrLog.Infof("Active network: %s (magic %s, default port %d)",
		activeNet.Name(), hex.EncodeToString(magic[:]),
		activeNet.DefaultPort())

	// Get a channel that will be closed when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	interrupt := interruptListener()
	defer log.EmbrLog.Info("Shutdown complete")

	chain := blockchain.New(activeNet.Params())
	tipHash, tipHeight := chain.Tip()
	log.EmbrLog.Infof("Chain initialized at height %d, hash %v", tipHeight,
		tipHash)
	log.EmbrLog.Infof("Next required target bits: %08x",
		chain.NextRequiredBits())

	amgr := addrmgr.New(activeNet.Params())
	log.EmbrLog.Infof("Address manager started with %d addresses",
		amgr.AddressCount())

	// Wait until the interrupt signal is received from an OS signal.
	<-interrupt
	return nil
}
