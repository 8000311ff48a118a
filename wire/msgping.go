package wire

// MsgPing implements the Message interface and represents an ember ping
// message.  It is used primarily to confirm that a connection is still valid
// and includes a nonce to identify the matching pong.
type MsgPing struct {
	// Unique value associated with message that is used to identify
	// specific ping message.
	Nonce uint64
}

// EmberDecode decodes r using the ember protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgPing) EmberDecode(r *BufReader) error {
	nonce, err := r.ReadUint64()
	if err != nil {
		return err
	}
	msg.Nonce = nonce
	return nil
}

// EmberEncode encodes the receiver to w using the ember protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgPing) EmberEncode(w *BufWriter) error {
	return w.WriteUint64(msg.Nonce)
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgPing) Command() string {
	return CmdPing
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgPing) MaxPayloadLength() uint32 {
	// Nonce 8 bytes.
	return 8
}

// NewMsgPing returns a new ember ping message that conforms to the Message
// interface.
func NewMsgPing(nonce uint64) *MsgPing {
	return &MsgPing{Nonce: nonce}
}

// MsgPong implements the Message interface and represents an ember pong
// message which is used primarily to reply to a ping message.
type MsgPong struct {
	// Unique value associated with message that is used to identify
	// specific ping message.
	Nonce uint64
}

// EmberDecode decodes r using the ember protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgPong) EmberDecode(r *BufReader) error {
	nonce, err := r.ReadUint64()
	if err != nil {
		return err
	}
	msg.Nonce = nonce
	return nil
}

// EmberEncode encodes the receiver to w using the ember protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgPong) EmberEncode(w *BufWriter) error {
	return w.WriteUint64(msg.Nonce)
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgPong) Command() string {
	return CmdPong
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgPong) MaxPayloadLength() uint32 {
	// Nonce 8 bytes.
	return 8
}

// NewMsgPong returns a new ember pong message that conforms to the Message
// interface.
func NewMsgPong(nonce uint64) *MsgPong {
	return &MsgPong{Nonce: nonce}
}
