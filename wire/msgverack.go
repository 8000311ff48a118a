package wire

// MsgVerAck implements the Message interface and represents an ember verack
// message which is used for a peer to acknowledge a version message after it
// has used the information to negotiate parameters.  It contains no payload.
type MsgVerAck struct{}

// EmberDecode decodes r using the ember protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgVerAck) EmberDecode(r *BufReader) error {
	return nil
}

// EmberEncode encodes the receiver to w using the ember protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgVerAck) EmberEncode(w *BufWriter) error {
	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgVerAck) Command() string {
	return CmdVerAck
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgVerAck) MaxPayloadLength() uint32 {
	return 0
}

// NewMsgVerAck returns a new ember verack message that conforms to the
// Message interface.
func NewMsgVerAck() *MsgVerAck {
	return &MsgVerAck{}
}
