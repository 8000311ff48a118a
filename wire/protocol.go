package wire

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

const (
	// ProtocolVersion is the latest protocol version this package supports.
	ProtocolVersion uint32 = 70013
)

// ServiceFlag identifies services supported by an ember peer.
type ServiceFlag uint64

const (
	// SFNodeNetwork is a flag used to indicate a peer is a full node.
	SFNodeNetwork ServiceFlag = 1 << iota

	// SFNodeBloom is a flag used to indicate a peer supports bloom
	// filtering.
	SFNodeBloom
)

// Map of service flags back to their constant names for pretty printing.
var sfStrings = map[ServiceFlag]string{
	SFNodeNetwork: "SFNodeNetwork",
	SFNodeBloom:   "SFNodeBloom",
}

// orderedSFStrings is an ordered list of service flags from highest to
// lowest.
var orderedSFStrings = []ServiceFlag{
	SFNodeNetwork,
	SFNodeBloom,
}

// String returns the ServiceFlag in human-readable form.
func (f ServiceFlag) String() string {
	// No flags are set.
	if f == 0 {
		return "0x0"
	}

	// Add individual bit flags.
	s := ""
	for _, flag := range orderedSFStrings {
		if f&flag == flag {
			s += sfStrings[flag] + "|"
			f -= flag
		}
	}

	// Add any remaining flags which aren't accounted for as hex.
	s = strings.TrimRight(s, "|")
	if f != 0 {
		s += "|0x" + strconv.FormatUint(uint64(f), 16)
	}
	s = strings.TrimLeft(s, "|")
	return s
}

// EmberNet represents which ember network a message belongs to.  The low
// byte of the value is the first magic byte on the wire.
type EmberNet uint32

// Constants used to indicate the message ember network.  Each network has
// two independent magic sequences: the preferred one and the legacy one that
// older peers still expect.  Both ship in the binary and the active one is
// chosen at run time via chaincfg.
const (
	// MainNet represents the main ember network (preferred magic).
	MainNet EmberNet = 0xe8f3e1e3

	// MainNetLegacy represents the main ember network with the legacy
	// magic sequence.
	MainNetLegacy EmberNet = 0xd9b4bef9

	// TestNet represents the test network (preferred magic).
	TestNet EmberNet = 0xf4f3e5f4

	// TestNetLegacy represents the test network with the legacy magic
	// sequence.
	TestNetLegacy EmberNet = 0x0709110b
)

// bnStrings is a map of ember networks back to their constant names for
// pretty printing.
var bnStrings = map[EmberNet]string{
	MainNet:       "MainNet",
	MainNetLegacy: "MainNetLegacy",
	TestNet:       "TestNet",
	TestNetLegacy: "TestNetLegacy",
}

// String returns the EmberNet in human-readable form.
func (n EmberNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown EmberNet (%d)", uint32(n))
}

// Bytes returns the four magic bytes as they appear at the start of every
// wire message for this network.
func (n EmberNet) Bytes() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return b
}
