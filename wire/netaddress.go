package wire

import (
	"encoding/binary"
	"net"
)

// NetAddressSize is the number of bytes a NetAddress occupies on the wire:
// 16 bytes of IP followed by the 2-byte port.
const NetAddressSize = 18

// NetAddress defines information about a peer on the network: its IP address
// and port.  The IP is always stored in the 16-byte form, with IPv4
// addresses mapped into IPv6 space.
type NetAddress struct {
	// IP address of the peer.
	IP [16]byte

	// Port the peer is using.  This is encoded in big endian on the wire
	// which differs from most everything else.
	Port uint16
}

// NewNetAddressIPPort returns a new NetAddress using the provided IP and
// port.  IPv4 addresses are mapped into the IPv6 form.
func NewNetAddressIPPort(ip net.IP, port uint16) *NetAddress {
	na := &NetAddress{Port: port}
	if ip16 := ip.To16(); ip16 != nil {
		copy(na.IP[:], ip16)
	}
	return na
}

// ToIP returns the address as a net.IP.
func (na *NetAddress) ToIP() net.IP {
	ip := make(net.IP, 16)
	copy(ip, na.IP[:])
	return ip
}

// ReadNetAddress reads a NetAddress from r.  The port is read in big endian
// regardless of the stream's ambient byte order: the current order is saved,
// forced to big endian for the port, then restored.  Stream exhaustion is
// propagated as the stream's own error.
func ReadNetAddress(r *BufReader, na *NetAddress) error {
	ip, err := r.ReadBytes(16)
	if err != nil {
		return err
	}
	copy(na.IP[:], ip)

	prevOrder := r.ByteOrder()
	r.SetByteOrder(binary.BigEndian)
	port, err := r.ReadUint16()
	r.SetByteOrder(prevOrder)
	if err != nil {
		return err
	}
	na.Port = port

	return nil
}

// WriteNetAddress serializes a NetAddress to w: the 16 raw IP bytes
// verbatim, then the port in big endian.  As with ReadNetAddress, the
// stream's prior byte order is restored after the port write.
func WriteNetAddress(w *BufWriter, na *NetAddress) error {
	if err := w.WriteBytes(na.IP[:]); err != nil {
		return err
	}

	prevOrder := w.ByteOrder()
	w.SetByteOrder(binary.BigEndian)
	err := w.WriteUint16(na.Port)
	w.SetByteOrder(prevOrder)
	return err
}
