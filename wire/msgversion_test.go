package wire

import (
	"bytes"
	"net"
	"reflect"
	"strings"
	"testing"
	"time"
)

// baseVersion returns a version message with every field populated and a
// fixed timestamp so encodings are reproducible.
func baseVersion() *MsgVersion {
	me := NewNetAddressIPPort(net.ParseIP("127.0.0.1"), 8333)
	you := NewNetAddressIPPort(net.ParseIP("192.168.0.1"), 8333)
	msg := NewMsgVersion(me, you, 0x1234567890abcdef, 2016)
	msg.Timestamp = time.Unix(0x62d43a40, 0)
	msg.Services = SFNodeNetwork
	return msg
}

// baseVersionEncoded is the wire encoding of baseVersion.  All integers are
// little endian except the net address ports, which are big endian.
var baseVersionEncoded = []byte{
	0x7d, 0x11, 0x01, 0x00, // Protocol version 70013
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // SFNodeNetwork
	0x40, 0x3a, 0xd4, 0x62, 0x00, 0x00, 0x00, 0x00, // Timestamp
	// AddrYou (IPv4-mapped 192.168.0.1, port 8333 big endian)
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xff, 0xff, 0xc0, 0xa8, 0x00, 0x01,
	0x20, 0x8d,
	// AddrMe (IPv4-mapped 127.0.0.1, port 8333 big endian)
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xff, 0xff, 0x7f, 0x00, 0x00, 0x01,
	0x20, 0x8d,
	0xef, 0xcd, 0xab, 0x90, 0x78, 0x56, 0x34, 0x12, // Nonce
	0x0e, // Varint for user agent length
	0x2f, 0x65, 0x6d, 0x62, 0x65, 0x72, 0x64, 0x3a, 0x30, 0x2e,
	0x31, 0x2e, 0x30, 0x2f, // User agent "/emberd:0.1.0/"
	0xe0, 0x07, 0x00, 0x00, // Last block 2016
}

// TestVersionWire tests the wire encoding of the version message against a
// pinned byte sequence and back.
func TestVersionWire(t *testing.T) {
	msg := baseVersion()

	w := NewBufWriter()
	if err := msg.EmberEncode(w); err != nil {
		t.Fatalf("EmberEncode: %v", err)
	}
	if !bytes.Equal(w.Bytes(), baseVersionEncoded) {
		t.Fatalf("encode mismatch:\n got %x\nwant %x", w.Bytes(),
			baseVersionEncoded)
	}

	var got MsgVersion
	if err := got.EmberDecode(NewBufReader(baseVersionEncoded)); err != nil {
		t.Fatalf("EmberDecode: %v", err)
	}
	if !reflect.DeepEqual(&got, msg) {
		t.Fatalf("decode mismatch: got %v, want %v", &got, msg)
	}
}

// TestVersionDefaults ensures NewMsgVersion fills the negotiable fields from
// the package defaults.
func TestVersionDefaults(t *testing.T) {
	msg := baseVersion()

	if msg.ProtocolVersion != int32(ProtocolVersion) {
		t.Errorf("protocol version: got %d, want %d",
			msg.ProtocolVersion, ProtocolVersion)
	}
	if msg.Command() != CmdVersion {
		t.Errorf("command: got %q, want %q", msg.Command(), CmdVersion)
	}

	wantPayload := uint32(32 + 2*NetAddressSize + 3 + MaxUserAgentLen)
	if got := msg.MaxPayloadLength(); got != wantPayload {
		t.Errorf("max payload: got %d, want %d", got, wantPayload)
	}
}

// TestVersionServices exercises the service flag helpers on the version
// message.
func TestVersionServices(t *testing.T) {
	msg := baseVersion()

	if !msg.HasService(SFNodeNetwork) {
		t.Error("SFNodeNetwork not reported after construction")
	}
	if msg.HasService(SFNodeBloom) {
		t.Error("SFNodeBloom reported without being added")
	}

	msg.AddService(SFNodeBloom)
	if !msg.HasService(SFNodeBloom) {
		t.Error("SFNodeBloom not reported after AddService")
	}
	if msg.Services != SFNodeNetwork|SFNodeBloom {
		t.Errorf("services: got %v, want %v", msg.Services,
			SFNodeNetwork|SFNodeBloom)
	}
}

// TestVersionUserAgentTooLong ensures over-length user agents are rejected
// on both the encode and decode paths.
func TestVersionUserAgentTooLong(t *testing.T) {
	msg := baseVersion()
	msg.UserAgent = "/" + strings.Repeat("a", MaxUserAgentLen) + "/"

	w := NewBufWriter()
	if err := msg.EmberEncode(w); err == nil {
		t.Fatal("encoded version message with over-length user agent")
	}

	// Hand-build a payload claiming an over-length user agent.
	msg.UserAgent = "/emberd:0.1.0/"
	w = NewBufWriter()
	if err := msg.EmberEncode(w); err != nil {
		t.Fatalf("EmberEncode: %v", err)
	}
	raw := w.Bytes()
	// The varint length byte sits right after the nonce.
	raw[20+2*NetAddressSize+8] = 0xfd
	var got MsgVersion
	if err := got.EmberDecode(NewBufReader(raw)); err == nil {
		t.Fatal("decoded version message with claimed over-length " +
			"user agent")
	}
}

// TestVersionTruncated ensures a version payload cut short in the address
// block fails to decode rather than reading past the end.
func TestVersionTruncated(t *testing.T) {
	for _, cut := range []int{0, 4, 12, 20, 30, 56, 60, 64} {
		var got MsgVersion
		r := NewBufReader(baseVersionEncoded[:cut])
		if err := got.EmberDecode(r); err == nil {
			t.Errorf("decode succeeded with %d-byte payload", cut)
		}
	}
}
