package chaincfg

import "github.com/emberlabs/emberd/wire"

// Network is the enumeration of the chains this node can run on.
type Network uint8

const (
	// MainNet is the production ember network.
	MainNet Network = iota

	// TestNet is the test ember network.
	TestNet
)

// MagicVariant selects which of the two magic-byte conventions is used at
// the start of every wire message.  Both are retained so the node can
// interoperate with peers expecting either; the choice is run-time
// configuration rather than a build flag.
type MagicVariant uint8

const (
	// PreferredMagic selects the current magic sequences.
	PreferredMagic MagicVariant = iota

	// LegacyMagic selects the magic sequences older peers expect.
	LegacyMagic
)

// Name returns a human-readable name for the given network.  An
// unrecognized value, which should be unreachable given the closed set of
// constants, yields "Unknown Net" rather than an error to match the
// permissive legacy behavior.
func Name(net Network) string {
	switch net {
	case MainNet:
		return "Main Net"
	case TestNet:
		return "Test Net"
	default:
		return "Unknown Net"
	}
}

// DefaultPort returns the default peer-to-peer port for the given network,
// or 0 for an unrecognized value.  As with Name, the fallback is a sentinel
// rather than an error.
func DefaultPort(net Network) uint16 {
	switch net {
	case MainNet:
		return 8333
	case TestNet:
		return 18333
	default:
		return 0
	}
}

// Magic returns the four magic bytes for the given network and variant.  An
// unrecognized combination yields the zero value.
func Magic(net Network, variant MagicVariant) [4]byte {
	switch {
	case net == MainNet && variant == PreferredMagic:
		return wire.MainNet.Bytes()
	case net == MainNet && variant == LegacyMagic:
		return wire.MainNetLegacy.Bytes()
	case net == TestNet && variant == PreferredMagic:
		return wire.TestNet.Bytes()
	case net == TestNet && variant == LegacyMagic:
		return wire.TestNetLegacy.Bytes()
	default:
		return [4]byte{}
	}
}

// Selection is the single cell holding which chain is active and which
// magic-byte variant is in use.  It replaces what would otherwise be a
// hidden process-wide global: construct one at startup and pass it to every
// component that needs it.
//
// Selection is not synchronized internally.  The intended lifecycle is
// single-writer at startup and many readers afterwards; callers that mutate
// it after spawning workers must synchronize externally.
type Selection struct {
	net     Network
	variant MagicVariant
}

// NewSelection returns a Selection for the given network and magic variant.
func NewSelection(net Network, variant MagicVariant) *Selection {
	return &Selection{net: net, variant: variant}
}

// Network returns the currently selected network.
func (s *Selection) Network() Network {
	return s.net
}

// SetNetwork sets the selected network.  It takes effect immediately for
// all subsequent calls.
func (s *Selection) SetNetwork(net Network) {
	s.net = net
}

// Variant returns the currently selected magic variant.
func (s *Selection) Variant() MagicVariant {
	return s.variant
}

// SetVariant sets the selected magic variant.
func (s *Selection) SetVariant(variant MagicVariant) {
	s.variant = variant
}

// Name returns the human-readable name of the selected network.
func (s *Selection) Name() string {
	return Name(s.net)
}

// DefaultPort returns the default peer-to-peer port of the selected
// network.
func (s *Selection) DefaultPort() uint16 {
	return DefaultPort(s.net)
}

// Magic returns the active four magic bytes given the selected network and
// variant.
func (s *Selection) Magic() [4]byte {
	return Magic(s.net, s.variant)
}

// Net returns the active magic as a wire.EmberNet for message framing.
func (s *Selection) Net() wire.EmberNet {
	switch s.variant {
	case LegacyMagic:
		return s.Params().LegacyNet
	default:
		return s.Params().Net
	}
}

// Params returns the full parameter set of the selected network.
func (s *Selection) Params() *Params {
	switch s.net {
	case TestNet:
		return &TestNetParams
	default:
		return &MainNetParams
	}
}
