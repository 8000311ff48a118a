package blockchain

import (
	"fmt"

	"github.com/emberlabs/emberd/chaincfg"
	"github.com/emberlabs/emberd/chaincfg/chainhash"
	"github.com/emberlabs/emberd/log"
	"github.com/emberlabs/emberd/wire"
)

// blockNode represents a block header within the chain and is used to aid
// in selecting the expected difficulty of descendants.
type blockNode struct {
	parent    *blockNode
	hash      chainhash.Hash
	height    int32
	bits      uint32
	timestamp int64
}

// newBlockNode returns a new node for the given header linked to the given
// parent.
func newBlockNode(header *wire.BlockHeader, parent *blockNode) *blockNode {
	node := &blockNode{
		parent:    parent,
		hash:      header.BlockHash(),
		bits:      header.Bits,
		timestamp: header.Timestamp.Unix(),
	}
	if parent != nil {
		node.height = parent.height + 1
	}
	return node
}

// RelativeAncestor returns the ancestor block node a relative distance of
// blocks before this node.
func (node *blockNode) RelativeAncestor(distance int32) *blockNode {
	n := node
	for i := int32(0); i < distance && n != nil; i++ {
		n = n.parent
	}
	return n
}

// Chain tracks a header-only view of the block chain: linkage from the
// genesis header, proof of work, and the difficulty schedule.  Transaction
// and script validation live with the consensus layer above, not here.
//
// Chain is not safe for concurrent access.
type Chain struct {
	params *chaincfg.Params
	index  map[chainhash.Hash]*blockNode
	tip    *blockNode
}

// New constructs a Chain anchored at the genesis header of the given
// network parameters.
func New(params *chaincfg.Params) *Chain {
	genesis := newBlockNode(&params.GenesisHeader, nil)
	c := &Chain{
		params: params,
		index:  make(map[chainhash.Hash]*blockNode),
		tip:    genesis,
	}
	c.index[genesis.hash] = genesis
	return c
}

// Tip returns the hash and height of the current chain tip.
func (c *Chain) Tip() (chainhash.Hash, int32) {
	return c.tip.hash, c.tip.height
}

// ruleError is returned when a header breaks a chain rule.
type ruleError string

func (e ruleError) Error() string {
	return string(e)
}

// ErrOrphanHeader is returned by ProcessHeader when the previous block of
// the submitted header is not known.
var ErrOrphanHeader = ruleError("previous block is not known")

// NextRequiredBits returns the compact difficulty target a header extending
// the current tip must carry.  Outside a retarget boundary that is the
// tip's own target; on a boundary it is recomputed from the timespan of the
// previous retarget period, bounded by the network's proof-of-work limit.
func (c *Chain) NextRequiredBits() uint32 {
	return c.nextBits(c.tip)
}

func (c *Chain) nextBits(parent *blockNode) uint32 {
	if (parent.height+1)%BlocksPerRetarget != 0 {
		return parent.bits
	}

	// Timespan of the period that just ended: from the first block of the
	// period to the parent, which is its last.
	first := parent.RelativeAncestor(BlocksPerRetarget - 1)
	if first == nil {
		return parent.bits
	}
	actualTimespan := parent.timestamp - first.timestamp
	newBits := CalcNextBits(parent.bits, actualTimespan, c.params.PowLimitBits)
	if newBits != parent.bits {
		log.ChanLog.Infof("Difficulty retarget at height %d: %08x -> %08x "+
			"(actual timespan %ds)", parent.height+1, parent.bits, newBits,
			actualTimespan)
	}
	return newBits
}

// ProcessHeader appends a header to the chain after verifying that it
// extends the current tip, carries the difficulty target the retarget
// schedule demands, and has a hash that meets its claimed target.  Headers
// whose previous block is unknown are rejected with ErrOrphanHeader; side
// chains and reorganization are out of scope for this view.
func (c *Chain) ProcessHeader(header *wire.BlockHeader) error {
	parent, ok := c.index[header.PrevBlock]
	if !ok {
		return ErrOrphanHeader
	}
	if parent != c.tip {
		return ruleError(fmt.Sprintf("header extends block %v which is "+
			"not the current tip", header.PrevBlock))
	}

	expectedBits := c.nextBits(parent)
	if header.Bits != expectedBits {
		return ruleError(fmt.Sprintf("block difficulty of %08x is not "+
			"the expected value of %08x", header.Bits, expectedBits))
	}

	hash := header.BlockHash()
	if !HashMeetsTarget(&hash, header.Bits) {
		return ruleError(fmt.Sprintf("block hash %v is higher than the "+
			"target of %08x", hash, header.Bits))
	}

	node := newBlockNode(header, parent)
	c.index[node.hash] = node
	c.tip = node
	log.ChanLog.Debugf("Accepted header %v (height %d)", node.hash,
		node.height)
	return nil
}
