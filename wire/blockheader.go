package wire

import (
	"time"

	"github.com/emberlabs/emberd/chaincfg/chainhash"
)

// blockHeaderLen is a constant that represents the number of bytes for a
// block header.
const blockHeaderLen = 80

// BlockHeader defines information about a block and is used in the ember
// block and headers messages.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block in compact form.  The top byte is
	// the exponent and the low three bytes are the mantissa.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// Serialize encodes a block header to w using the ember wire format.
func (h *BlockHeader) Serialize(w *BufWriter) error {
	if err := w.WriteInt32(h.Version); err != nil {
		return err
	}
	if err := w.WriteBytes(h.PrevBlock[:]); err != nil {
		return err
	}
	if err := w.WriteBytes(h.MerkleRoot[:]); err != nil {
		return err
	}
	if err := w.WriteUint32(uint32(h.Timestamp.Unix())); err != nil {
		return err
	}
	if err := w.WriteUint32(h.Bits); err != nil {
		return err
	}
	return w.WriteUint32(h.Nonce)
}

// Deserialize decodes a block header from r using the ember wire format.
func (h *BlockHeader) Deserialize(r *BufReader) error {
	version, err := r.ReadInt32()
	if err != nil {
		return err
	}
	h.Version = version

	prev, err := r.ReadBytes(chainhash.HashSize)
	if err != nil {
		return err
	}
	copy(h.PrevBlock[:], prev)

	merkle, err := r.ReadBytes(chainhash.HashSize)
	if err != nil {
		return err
	}
	copy(h.MerkleRoot[:], merkle)

	ts, err := r.ReadUint32()
	if err != nil {
		return err
	}
	h.Timestamp = time.Unix(int64(ts), 0)

	bits, err := r.ReadUint32()
	if err != nil {
		return err
	}
	h.Bits = bits

	nonce, err := r.ReadUint32()
	if err != nil {
		return err
	}
	h.Nonce = nonce

	return nil
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encoding never fails for an in-memory writer, so the error is
	// ignored.
	w := NewBufWriter()
	_ = h.Serialize(w)
	return chainhash.DoubleHashH(w.Bytes())
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce with the
// timestamp set to the current time truncated to one second precision.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint32) *BlockHeader {

	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}
