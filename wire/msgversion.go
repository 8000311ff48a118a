package wire

import (
	"fmt"
	"time"
)

// MaxUserAgentLen is the maximum allowed length for the user agent field in
// a version message.
const MaxUserAgentLen = 256

// MsgVersion implements the Message interface and represents an ember
// version message.  It is used for a peer to advertise itself as soon as an
// outbound connection is made.  The remote peer then uses this information
// along with its own to negotiate.  The remote peer must then respond with a
// version message of its own containing the negotiated values followed by a
// verack message.
type MsgVersion struct {
	// Version of the protocol the node is using.
	ProtocolVersion int32

	// Bitfield which identifies the enabled services.
	Services ServiceFlag

	// Time the message was generated.  This is encoded as an int64 on the
	// wire with second precision.
	Timestamp time.Time

	// Address of the remote peer.
	AddrYou NetAddress

	// Address of the local peer.
	AddrMe NetAddress

	// Unique value associated with message that is used to detect self
	// connections.
	Nonce uint64

	// The user agent that generated the message.  This is encoded as a
	// varint length followed by the string.
	UserAgent string

	// Last block seen by the generator of the version message.
	LastBlock int32
}

// HasService returns whether the specified service is supported by the peer
// that generated the message.
func (msg *MsgVersion) HasService(service ServiceFlag) bool {
	return msg.Services&service == service
}

// AddService adds service as a supported service by the peer generating the
// message.
func (msg *MsgVersion) AddService(service ServiceFlag) {
	msg.Services |= service
}

// EmberDecode decodes r using the ember protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgVersion) EmberDecode(r *BufReader) error {
	pver, err := r.ReadInt32()
	if err != nil {
		return err
	}
	msg.ProtocolVersion = pver

	services, err := r.ReadUint64()
	if err != nil {
		return err
	}
	msg.Services = ServiceFlag(services)

	timestamp, err := r.ReadInt64()
	if err != nil {
		return err
	}
	msg.Timestamp = time.Unix(timestamp, 0)

	if err := ReadNetAddress(r, &msg.AddrYou); err != nil {
		return err
	}
	if err := ReadNetAddress(r, &msg.AddrMe); err != nil {
		return err
	}

	nonce, err := r.ReadUint64()
	if err != nil {
		return err
	}
	msg.Nonce = nonce

	uaLen, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if uaLen > MaxUserAgentLen {
		return fmt.Errorf("user agent too long [len %d, max %d]",
			uaLen, MaxUserAgentLen)
	}
	ua, err := r.ReadBytes(int(uaLen))
	if err != nil {
		return err
	}
	msg.UserAgent = string(ua)

	lastBlock, err := r.ReadInt32()
	if err != nil {
		return err
	}
	msg.LastBlock = lastBlock

	return nil
}

// EmberEncode encodes the receiver to w using the ember protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgVersion) EmberEncode(w *BufWriter) error {
	if len(msg.UserAgent) > MaxUserAgentLen {
		return fmt.Errorf("user agent too long [len %d, max %d]",
			len(msg.UserAgent), MaxUserAgentLen)
	}

	if err := w.WriteInt32(msg.ProtocolVersion); err != nil {
		return err
	}
	if err := w.WriteUint64(uint64(msg.Services)); err != nil {
		return err
	}
	if err := w.WriteInt64(msg.Timestamp.Unix()); err != nil {
		return err
	}
	if err := WriteNetAddress(w, &msg.AddrYou); err != nil {
		return err
	}
	if err := WriteNetAddress(w, &msg.AddrMe); err != nil {
		return err
	}
	if err := w.WriteUint64(msg.Nonce); err != nil {
		return err
	}
	WriteVarInt(w, uint64(len(msg.UserAgent)))
	if err := w.WriteBytes([]byte(msg.UserAgent)); err != nil {
		return err
	}
	return w.WriteInt32(msg.LastBlock)
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgVersion) Command() string {
	return CmdVersion
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgVersion) MaxPayloadLength() uint32 {
	// Protocol version 4 bytes + services 8 bytes + timestamp 8 bytes +
	// remote and local net addresses + nonce 8 bytes + length of user
	// agent (varint) + max allowed user agent length + last block 4 bytes.
	return 32 + (NetAddressSize * 2) + uint32(VarIntSerializeSize(MaxUserAgentLen)) +
		MaxUserAgentLen
}

// NewMsgVersion returns a new ember version message that conforms to the
// Message interface using the passed parameters and defaults for the
// remaining fields.
func NewMsgVersion(me *NetAddress, you *NetAddress, nonce uint64,
	lastBlock int32) *MsgVersion {

	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &MsgVersion{
		ProtocolVersion: int32(ProtocolVersion),
		Services:        0,
		Timestamp:       time.Unix(time.Now().Unix(), 0),
		AddrYou:         *you,
		AddrMe:          *me,
		Nonce:           nonce,
		UserAgent:       "/emberd:0.1.0/",
		LastBlock:       lastBlock,
	}
}
