package wire

import (
	"bytes"
	"net"
	"reflect"
	"testing"
	"time"
)

// TestMessageWire round trips each supported message type through the full
// framing (magic, command, length, checksum) for both magic variants.
func TestMessageWire(t *testing.T) {
	addrMsg := NewMsgAddr()
	addrMsg.AddAddress(NewNetAddressIPPort(net.ParseIP("127.0.0.1"), 8333))
	addrMsg.AddAddress(NewNetAddressIPPort(net.ParseIP("::1"), 18333))

	me := NewNetAddressIPPort(net.ParseIP("127.0.0.1"), 8333)
	you := NewNetAddressIPPort(net.ParseIP("192.168.0.1"), 8333)
	verMsg := NewMsgVersion(me, you, 0x9da118e1c38015ab, 2016)
	verMsg.Timestamp = time.Unix(0x62d43a40, 0)
	verMsg.AddService(SFNodeNetwork)

	tests := []struct {
		msg Message
	}{
		{NewMsgVerAck()},
		{verMsg},
		{NewMsgPing(0x1234567890abcdef)},
		{NewMsgPong(0xfedcba0987654321)},
		{addrMsg},
	}

	for _, enet := range []EmberNet{MainNet, MainNetLegacy, TestNet, TestNetLegacy} {
		for i, test := range tests {
			var buf bytes.Buffer
			n, err := WriteMessage(&buf, test.msg, enet)
			if err != nil {
				t.Errorf("WriteMessage #%d (%v): %v", i, enet, err)
				continue
			}
			if n != buf.Len() {
				t.Errorf("WriteMessage #%d (%v): reported %d bytes, "+
					"wrote %d", i, enet, n, buf.Len())
			}

			// Magic bytes lead every message.
			magic := enet.Bytes()
			if !bytes.Equal(buf.Bytes()[0:4], magic[:]) {
				t.Errorf("WriteMessage #%d (%v): magic %x, want %x",
					i, enet, buf.Bytes()[0:4], magic)
			}

			_, msg, _, err := ReadMessage(&buf, enet)
			if err != nil {
				t.Errorf("ReadMessage #%d (%v): %v", i, enet, err)
				continue
			}
			if !reflect.DeepEqual(msg, test.msg) {
				t.Errorf("ReadMessage #%d (%v): got %v, want %v",
					i, enet, msg, test.msg)
			}
		}
	}
}

// TestMessageWrongNetwork ensures a message framed for one network is
// rejected when read for another, for every combination of magic variants.
func TestMessageWrongNetwork(t *testing.T) {
	nets := []EmberNet{MainNet, MainNetLegacy, TestNet, TestNetLegacy}
	for _, wnet := range nets {
		for _, rnet := range nets {
			if wnet == rnet {
				continue
			}
			var buf bytes.Buffer
			if _, err := WriteMessage(&buf, NewMsgVerAck(), wnet); err != nil {
				t.Fatalf("WriteMessage (%v): %v", wnet, err)
			}
			if _, _, _, err := ReadMessage(&buf, rnet); err == nil {
				t.Errorf("ReadMessage: %v frame accepted for %v",
					wnet, rnet)
			}
		}
	}
}

// TestMessageCorruptChecksum ensures a payload flip is caught by the header
// checksum.
func TestMessageCorruptChecksum(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteMessage(&buf, NewMsgPing(42), MainNet); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xff
	if _, _, _, err := ReadMessage(bytes.NewReader(raw), MainNet); err == nil {
		t.Fatal("corrupted payload accepted")
	}
}

// TestMessageUnhandledCommand ensures unknown commands are rejected.
func TestMessageUnhandledCommand(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteMessage(&buf, NewMsgVerAck(), MainNet); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	raw := buf.Bytes()
	copy(raw[4:16], []byte("bogus\x00\x00\x00\x00\x00\x00\x00"))
	if _, _, _, err := ReadMessage(bytes.NewReader(raw), MainNet); err == nil {
		t.Fatal("unknown command accepted")
	}
}

// TestMsgAddrTooMany ensures the addr message count limit is enforced on
// decode.
func TestMsgAddrTooMany(t *testing.T) {
	w := NewBufWriter()
	WriteVarInt(w, MaxAddrPerMsg+1)

	msg := NewMsgAddr()
	if err := msg.EmberDecode(NewBufReader(w.Bytes())); err == nil {
		t.Fatal("oversized addr count accepted")
	}
}
