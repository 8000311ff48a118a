package blockchain

import (
	"errors"
	"testing"
	"time"

	"github.com/emberlabs/emberd/chaincfg"
	"github.com/emberlabs/emberd/chaincfg/chainhash"
	"github.com/emberlabs/emberd/wire"
)

// testChainParams returns main net parameters with the difficulty floor
// raised so far that any header hash meets the target.  With a length byte
// of 0xf7 the expanded target exceeds every 256-bit hash, so fixtures do
// not need to be mined.
func testChainParams() *chaincfg.Params {
	params := chaincfg.MainNetParams
	params.PowLimitBits = 0xf700ffff
	params.GenesisHeader.Bits = 0xf700ffff
	return &params
}

// nextTestHeader builds a header extending the given chain tip with the
// required difficulty and the given timestamp.
func nextTestHeader(c *Chain, timestamp time.Time) *wire.BlockHeader {
	tipHash, _ := c.Tip()
	return &wire.BlockHeader{
		Version:   1,
		PrevBlock: tipHash,
		Timestamp: timestamp,
		Bits:      c.NextRequiredBits(),
	}
}

// TestChainRetargetSchedule extends a chain across a full retarget period
// with blocks spaced at the target rate minus one interval and verifies the
// recomputed difficulty at the boundary.
func TestChainRetargetSchedule(t *testing.T) {
	params := testChainParams()
	c := New(params)

	base := params.GenesisHeader.Timestamp
	for i := int32(1); i < BlocksPerRetarget; i++ {
		hdr := nextTestHeader(c, base.Add(time.Duration(i)*600*time.Second))
		if hdr.Bits != 0xf700ffff {
			t.Fatalf("height %d: required bits %08x before retarget", i,
				hdr.Bits)
		}
		if err := c.ProcessHeader(hdr); err != nil {
			t.Fatalf("ProcessHeader height %d: %v", i, err)
		}
	}

	// Height 2016 sits on the boundary: the period spanned 2015 intervals
	// of 600s, so the target tightens slightly.
	if got := c.NextRequiredBits(); got != 0xf700ffde {
		t.Fatalf("retarget bits: got %08x, want %08x", got, 0xf700ffde)
	}

	hdr := nextTestHeader(c, base.Add(time.Duration(BlocksPerRetarget)*600*time.Second))
	if err := c.ProcessHeader(hdr); err != nil {
		t.Fatalf("ProcessHeader at retarget boundary: %v", err)
	}
	if _, height := c.Tip(); height != BlocksPerRetarget {
		t.Fatalf("tip height: got %d, want %d", height, BlocksPerRetarget)
	}

	// The new target carries forward within the next period.
	if got := c.NextRequiredBits(); got != 0xf700ffde {
		t.Fatalf("bits after retarget: got %08x, want %08x",
			got, 0xf700ffde)
	}
}

// TestChainRejectsWeakPoW ensures a header whose hash does not meet its own
// difficulty target is rejected even when it carries the scheduled bits.
// On the real main net parameters the target for 0x1d00ffff is far below
// any hash these unmined fixtures can produce.
func TestChainRejectsWeakPoW(t *testing.T) {
	c := New(&chaincfg.MainNetParams)
	genesisHash, _ := c.Tip()

	hdr := nextTestHeader(c, time.Unix(0x62d43a40+600, 0))
	if hdr.Bits != 0x1d00ffff {
		t.Fatalf("required bits: got %08x, want %08x", hdr.Bits,
			0x1d00ffff)
	}

	hash := hdr.BlockHash()
	if HashMeetsTarget(&hash, hdr.Bits) {
		t.Fatalf("fixture hash %v unexpectedly meets target %08x", hash,
			hdr.Bits)
	}

	err := c.ProcessHeader(hdr)
	if err == nil {
		t.Fatal("header with insufficient proof of work accepted")
	}
	if errors.Is(err, ErrOrphanHeader) {
		t.Fatalf("got err %v, want a proof of work rule error", err)
	}
	if tipHash, height := c.Tip(); tipHash != genesisHash || height != 0 {
		t.Fatalf("tip moved to %v (height %d) after rejected header",
			tipHash, height)
	}
}

// TestChainRejectsWrongBits ensures a header carrying a difficulty other
// than the scheduled one is rejected.
func TestChainRejectsWrongBits(t *testing.T) {
	c := New(testChainParams())

	hdr := nextTestHeader(c, time.Unix(0x62d43a40+600, 0))
	hdr.Bits = 0xf63fffc0
	if err := c.ProcessHeader(hdr); err == nil {
		t.Fatal("header with off-schedule bits accepted")
	}
}

// TestChainRejectsOrphan ensures a header whose previous block is unknown
// is rejected with ErrOrphanHeader.
func TestChainRejectsOrphan(t *testing.T) {
	c := New(testChainParams())

	unknown := chainhash.DoubleHashH([]byte("nowhere"))
	hdr := &wire.BlockHeader{
		Version:   1,
		PrevBlock: unknown,
		Timestamp: time.Unix(0x62d43a40+600, 0),
		Bits:      c.NextRequiredBits(),
	}
	if err := c.ProcessHeader(hdr); !errors.Is(err, ErrOrphanHeader) {
		t.Fatalf("got err %v, want %v", err, ErrOrphanHeader)
	}
}

// TestChainRejectsNonTipParent ensures headers forking below the tip are
// rejected by this extend-only view.
func TestChainRejectsNonTipParent(t *testing.T) {
	c := New(testChainParams())
	genesisHash, _ := c.Tip()

	hdr := nextTestHeader(c, time.Unix(0x62d43a40+600, 0))
	if err := c.ProcessHeader(hdr); err != nil {
		t.Fatalf("ProcessHeader: %v", err)
	}

	fork := &wire.BlockHeader{
		Version:   1,
		PrevBlock: genesisHash,
		Timestamp: time.Unix(0x62d43a40+1200, 0),
		Bits:      c.NextRequiredBits(),
	}
	if err := c.ProcessHeader(fork); err == nil {
		t.Fatal("header extending a non-tip block accepted")
	}
}
