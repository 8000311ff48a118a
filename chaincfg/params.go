package chaincfg

import (
	"github.com/emberlabs/emberd/wire"
)

// Params defines an ember network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network in the
	// preferred variant.
	Net wire.EmberNet

	// LegacyNet defines the magic bytes older peers still expect for the
	// same network.
	LegacyNet wire.EmberNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort uint16

	// GenesisHeader defines the first block header of the chain.
	GenesisHeader wire.BlockHeader

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.  It doubles as the ceiling supplied to the
	// retarget calculation.
	PowLimitBits uint32

	// SeedAddrs defines a list of known good peers used to bootstrap
	// address discovery.
	SeedAddrs []wire.NetAddress
}

// MainNetParams defines the network parameters for the main ember network.
var MainNetParams = Params{
	Name:          "mainnet",
	Net:           wire.MainNet,
	LegacyNet:     wire.MainNetLegacy,
	DefaultPort:   8333,
	GenesisHeader: genesisBlockHeader,
	PowLimitBits:  0x1d00ffff,
	SeedAddrs:     mainNetSeeds,
}

// TestNetParams defines the network parameters for the test ember network.
var TestNetParams = Params{
	Name:          "testnet",
	Net:           wire.TestNet,
	LegacyNet:     wire.TestNetLegacy,
	DefaultPort:   18333,
	GenesisHeader: testNetGenesisBlockHeader,
	PowLimitBits:  0x1d00ffff,
	SeedAddrs:     testNetSeeds,
}
