package chaincfg

import (
	"time"

	"github.com/emberlabs/emberd/chaincfg/chainhash"
	"github.com/emberlabs/emberd/wire"
)

// genesisMerkleRoot is the hash of the first transaction in the genesis
// block for the main network.
var genesisMerkleRoot = chainhash.Hash{
	0x3b, 0xa3, 0xed, 0xfd, 0x7a, 0x7b, 0x12, 0xb2,
	0x7a, 0xc7, 0x2c, 0x3e, 0x67, 0x76, 0x8f, 0x61,
	0x7f, 0xc8, 0x1b, 0xc3, 0x88, 0x8a, 0x51, 0x32,
	0x3a, 0x9f, 0xb8, 0xaa, 0x4b, 0x1e, 0x5e, 0x4a,
}

// genesisBlockHeader is the header of the first block of the main ember
// block chain.
var genesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{}, // All zero.
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(0x62d43a40, 0), // 2022-07-17 16:35:12 +0000 UTC
	Bits:       0x1d00ffff,
	Nonce:      0x7c2bac1d,
}

// testNetGenesisBlockHeader is the header of the first block of the test
// ember block chain.  It shares the merkle root with the main network and
// differs in its timestamp and nonce.
var testNetGenesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{}, // All zero.
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(0x62d44b50, 0), // 2022-07-17 17:48:00 +0000 UTC
	Bits:       0x1d00ffff,
	Nonce:      0x18aea41a,
}
