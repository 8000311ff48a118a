package wire

import "errors"

// VarIntShortfall is the value the legacy decoder returns when the stream
// does not hold enough bytes to complete a decode.  Note that 0xFFFFFFFF is
// also a legitimately decodable 32-bit value, so callers of the legacy
// decoder cannot tell the two cases apart; ReadVarInt reports starvation as
// a real error instead.  The sentinel is kept for callers that need the
// historical wire-level contract.
const VarIntShortfall uint64 = 0xffffffff

// ErrVarIntShort is returned by ReadVarInt when the stream holds fewer bytes
// than the discriminant demands.
var ErrVarIntShort = errors.New("varint: not enough bytes remaining")

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
//
// The boundaries intentionally use strict less-than comparisons, so the
// values 0xffff and 0xffffffff themselves encode in the next larger form.
// This matches the deployed encoder byte-for-byte and must not be tightened
// to the fits-exactly convention.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val < 0xffff {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val < 0xffffffff {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value and returns the number of bytes written.  The multi-byte
// payloads are emitted in the stream's ambient byte order, which the
// protocol runs little-endian.
func WriteVarInt(w *BufWriter, val uint64) int {
	if val < 0xfd {
		w.WriteUint8(uint8(val))
		return 1
	}

	if val < 0xffff {
		w.WriteUint8(0xfd)
		w.WriteUint16(uint16(val))
		return 3
	}

	if val < 0xffffffff {
		w.WriteUint8(0xfe)
		w.WriteUint32(uint32(val))
		return 5
	}

	w.WriteUint8(0xff)
	w.WriteUint64(val)
	return 9
}

// ReadVarInt reads a variable length integer from r.  The remaining byte
// count is checked before each read, so the function never reads past the
// end of the stream; starvation is reported as ErrVarIntShort.
func ReadVarInt(r *BufReader) (uint64, error) {
	if r.Remaining() < 1 {
		return 0, ErrVarIntShort
	}
	discriminant, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}

	switch discriminant {
	case 0xff:
		if r.Remaining() < 8 {
			return 0, ErrVarIntShort
		}
		return r.ReadUint64()

	case 0xfe:
		if r.Remaining() < 4 {
			return 0, ErrVarIntShort
		}
		v, err := r.ReadUint32()
		return uint64(v), err

	case 0xfd:
		if r.Remaining() < 2 {
			return 0, ErrVarIntShort
		}
		v, err := r.ReadUint16()
		return uint64(v), err

	default:
		return uint64(discriminant), nil
	}
}

// ReadVarIntLegacy reads a variable length integer from r with the
// historical error contract: when the stream holds fewer bytes than the
// decode demands, including the case where even the discriminant byte is
// unavailable, it returns VarIntShortfall rather than an error.
func ReadVarIntLegacy(r *BufReader) uint64 {
	val, err := ReadVarInt(r)
	if err != nil {
		return VarIntShortfall
	}
	return val
}
