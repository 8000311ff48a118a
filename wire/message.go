package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/emberlabs/emberd/chaincfg/chainhash"
)

// MessageHeaderSize is the number of bytes in an ember message header.
// It consists of the network magic (4 bytes), command (12 bytes), payload
// length (4 bytes) and payload checksum (4 bytes).
const MessageHeaderSize = 24

// CommandSize is the fixed size of all commands in the common ember message
// header.  Shorter commands must be zero padded.
const CommandSize = 12

// MaxMessagePayload is the maximum bytes a message can be regardless of
// other individual limits imposed by messages themselves.
const MaxMessagePayload = (1024 * 1024 * 32) // 32MB

// Commands used in ember message headers which describe the type of message.
const (
	CmdVersion = "version"
	CmdVerAck  = "verack"
	CmdAddr    = "addr"
	CmdPing    = "ping"
	CmdPong    = "pong"
)

// Message is an interface that describes an ember message.  A type that
// implements Message has complete control over the representation of its
// data and may therefore contain additional or fewer fields than those which
// are used directly in the protocol encoded message.
type Message interface {
	EmberDecode(*BufReader) error
	EmberEncode(*BufWriter) error
	Command() string
	MaxPayloadLength() uint32
}

// makeEmptyMessage creates a message of the appropriate concrete type based
// on the command.
func makeEmptyMessage(command string) (Message, error) {
	var msg Message
	switch command {
	case CmdVersion:
		msg = &MsgVersion{}

	case CmdVerAck:
		msg = &MsgVerAck{}

	case CmdAddr:
		msg = &MsgAddr{}

	case CmdPing:
		msg = &MsgPing{}

	case CmdPong:
		msg = &MsgPong{}

	default:
		return nil, fmt.Errorf("unhandled command [%s]", command)
	}
	return msg, nil
}

// messageHeader defines the header structure for all ember protocol
// messages.
type messageHeader struct {
	magic    EmberNet // 4 bytes
	command  string   // 12 bytes
	length   uint32   // 4 bytes
	checksum [4]byte  // 4 bytes
}

// WriteMessage writes an ember Message to w including the necessary header
// information.  It returns the number of bytes written.
func WriteMessage(w io.Writer, msg Message, emberNet EmberNet) (int, error) {
	totalBytes := 0

	// Enforce max command size.
	var command [CommandSize]byte
	cmd := msg.Command()
	if len(cmd) > CommandSize {
		return totalBytes, fmt.Errorf("command [%s] is too long [max %v]",
			cmd, CommandSize)
	}
	copy(command[:], []byte(cmd))

	// Encode the message payload.
	pw := NewBufWriter()
	if err := msg.EmberEncode(pw); err != nil {
		return totalBytes, err
	}
	payload := pw.Bytes()
	lenp := len(payload)

	// Enforce maximum overall message payload.
	if lenp > MaxMessagePayload {
		return totalBytes, fmt.Errorf("message payload is too large - "+
			"encoded %d bytes, but maximum message payload is %d bytes",
			lenp, MaxMessagePayload)
	}

	// Enforce maximum message payload based on the message type.
	mpl := msg.MaxPayloadLength()
	if uint32(lenp) > mpl {
		return totalBytes, fmt.Errorf("message payload is too large - "+
			"encoded %d bytes, but maximum message payload size for "+
			"messages of type [%s] is %d", lenp, cmd, mpl)
	}

	// Create header for the message.
	hdr := messageHeader{}
	hdr.magic = emberNet
	hdr.command = cmd
	hdr.length = uint32(lenp)
	copy(hdr.checksum[:], chainhash.DoubleHashB(payload)[0:4])

	// Encode the header for the message.  The header is written directly
	// instead of through the modal writer since its layout never varies.
	hw := bytes.NewBuffer(make([]byte, 0, MessageHeaderSize))
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(hdr.magic))
	hw.Write(buf[:])
	hw.Write(command[:])
	binary.LittleEndian.PutUint32(buf[:], hdr.length)
	hw.Write(buf[:])
	hw.Write(hdr.checksum[:])

	// Write header.
	n, err := w.Write(hw.Bytes())
	totalBytes += n
	if err != nil {
		return totalBytes, err
	}

	// Only write the payload if there is one, e.g., verack messages don't
	// have one.
	if len(payload) > 0 {
		n, err = w.Write(payload)
		totalBytes += n
	}

	return totalBytes, err
}

// readMessageHeader reads an ember message header from r.
func readMessageHeader(r io.Reader) (int, *messageHeader, error) {
	var headerBytes [MessageHeaderSize]byte
	n, err := io.ReadFull(r, headerBytes[:])
	if err != nil {
		return n, nil, err
	}

	hdr := messageHeader{}
	hdr.magic = EmberNet(binary.LittleEndian.Uint32(headerBytes[0:4]))
	var command [CommandSize]byte
	copy(command[:], headerBytes[4:16])
	hdr.command = string(bytes.TrimRight(command[:], "\x00"))
	hdr.length = binary.LittleEndian.Uint32(headerBytes[16:20])
	copy(hdr.checksum[:], headerBytes[20:24])

	return n, &hdr, nil
}

// ReadMessage reads, validates, and parses the next ember Message from r for
// the provided network.  It returns the number of bytes read in addition to
// the parsed Message and raw payload bytes.
func ReadMessage(r io.Reader, emberNet EmberNet) (int, Message, []byte, error) {
	totalBytes := 0
	n, hdr, err := readMessageHeader(r)
	totalBytes += n
	if err != nil {
		return totalBytes, nil, nil, err
	}

	// Enforce maximum message payload.
	if hdr.length > MaxMessagePayload {
		return totalBytes, nil, nil, fmt.Errorf("message payload is too "+
			"large - header indicates %d bytes, but max message payload "+
			"is %d bytes", hdr.length, MaxMessagePayload)
	}

	// Check for messages from the wrong ember network.
	if hdr.magic != emberNet {
		return totalBytes, nil, nil, fmt.Errorf("message from other "+
			"network [%v]", hdr.magic)
	}

	// Check for malformed commands.
	command := hdr.command
	if !utf8.ValidString(command) {
		return totalBytes, nil, nil, fmt.Errorf("invalid command %v",
			[]byte(command))
	}

	// Create struct of appropriate message type based on the command.
	msg, err := makeEmptyMessage(command)
	if err != nil {
		return totalBytes, nil, nil, err
	}

	// Check for maximum length based on the message type.
	mpl := msg.MaxPayloadLength()
	if hdr.length > mpl {
		return totalBytes, nil, nil, fmt.Errorf("payload exceeds max "+
			"length - header indicates %v bytes, but max payload size for "+
			"messages of type [%v] is %v", hdr.length, command, mpl)
	}

	// Read payload.
	payload := make([]byte, hdr.length)
	n, err = io.ReadFull(r, payload)
	totalBytes += n
	if err != nil {
		return totalBytes, nil, nil, err
	}

	// Test checksum.
	checksum := chainhash.DoubleHashB(payload)[0:4]
	if !bytes.Equal(checksum, hdr.checksum[:]) {
		return totalBytes, nil, nil, fmt.Errorf("payload checksum failed "+
			"- header indicates %v, but actual checksum is %v",
			hdr.checksum, checksum)
	}

	// Unmarshal message.
	if err := msg.EmberDecode(NewBufReader(payload)); err != nil {
		return totalBytes, nil, nil, err
	}

	return totalBytes, msg, payload, nil
}
