package wire

import "fmt"

// MaxAddrPerMsg is the maximum number of addresses that can be in a single
// ember addr message.
const MaxAddrPerMsg = 1000

// MsgAddr implements the Message interface and represents an ember addr
// message.  It is used to provide a list of known active peers on the
// network.  Each message is limited to a maximum number of addresses, which
// is currently 1000.
type MsgAddr struct {
	AddrList []*NetAddress
}

// AddAddress adds a known active peer to the message.
func (msg *MsgAddr) AddAddress(na *NetAddress) error {
	if len(msg.AddrList)+1 > MaxAddrPerMsg {
		return fmt.Errorf("too many addresses in message [max %v]",
			MaxAddrPerMsg)
	}

	msg.AddrList = append(msg.AddrList, na)
	return nil
}

// EmberDecode decodes r using the ember protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgAddr) EmberDecode(r *BufReader) error {
	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}

	// Limit to max addresses per message.
	if count > MaxAddrPerMsg {
		return fmt.Errorf("too many addresses for message [count %v, "+
			"max %v]", count, MaxAddrPerMsg)
	}

	addrList := make([]NetAddress, count)
	msg.AddrList = make([]*NetAddress, 0, count)
	for i := uint64(0); i < count; i++ {
		na := &addrList[i]
		if err := ReadNetAddress(r, na); err != nil {
			return err
		}
		msg.AddrList = append(msg.AddrList, na)
	}
	return nil
}

// EmberEncode encodes the receiver to w using the ember protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgAddr) EmberEncode(w *BufWriter) error {
	count := len(msg.AddrList)
	if count > MaxAddrPerMsg {
		return fmt.Errorf("too many addresses for message [count %v, "+
			"max %v]", count, MaxAddrPerMsg)
	}

	WriteVarInt(w, uint64(count))
	for _, na := range msg.AddrList {
		if err := WriteNetAddress(w, na); err != nil {
			return err
		}
	}
	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgAddr) Command() string {
	return CmdAddr
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgAddr) MaxPayloadLength() uint32 {
	// Num addresses (varInt) + max allowed addresses.
	return uint32(VarIntSerializeSize(MaxAddrPerMsg)) +
		(MaxAddrPerMsg * NetAddressSize)
}

// NewMsgAddr returns a new ember addr message that conforms to the Message
// interface.
func NewMsgAddr() *MsgAddr {
	return &MsgAddr{
		AddrList: make([]*NetAddress, 0, MaxAddrPerMsg),
	}
}
