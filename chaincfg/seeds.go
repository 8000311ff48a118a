package chaincfg

import "github.com/emberlabs/emberd/wire"

// ipv4Seed maps a dotted-quad address into the 16-byte IPv4-in-IPv6 form
// used on the wire.
func ipv4Seed(a, b, c, d byte, port uint16) wire.NetAddress {
	return wire.NetAddress{
		IP: [16]byte{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0xff, 0xff, a, b, c, d,
		},
		Port: port,
	}
}

// mainNetSeeds is the list of known good peers used to bootstrap address
// discovery on the main network.  The entries are pure configuration data;
// this package only stores them and the address manager consumes them.
var mainNetSeeds = []wire.NetAddress{
	ipv4Seed(5, 9, 24, 81, 8333),
	ipv4Seed(46, 4, 93, 18, 8333),
	ipv4Seed(51, 15, 86, 207, 8333),
	ipv4Seed(78, 47, 61, 83, 8333),
	ipv4Seed(88, 99, 167, 175, 8333),
	ipv4Seed(95, 216, 11, 202, 8333),
	ipv4Seed(138, 201, 55, 219, 8333),
	ipv4Seed(144, 76, 112, 193, 8333),
	ipv4Seed(162, 55, 103, 34, 8333),
	ipv4Seed(168, 119, 68, 105, 8333),
	ipv4Seed(178, 63, 107, 226, 8333),
	ipv4Seed(195, 201, 98, 14, 8333),
}

// testNetSeeds is the list of known good peers for the test network.
var testNetSeeds = []wire.NetAddress{
	ipv4Seed(49, 12, 7, 113, 18333),
	ipv4Seed(65, 21, 204, 89, 18333),
	ipv4Seed(135, 181, 44, 76, 18333),
	ipv4Seed(157, 90, 131, 220, 18333),
}
