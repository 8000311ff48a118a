package addrmgr

import (
	"net"
	"strconv"
	"sync"

	"github.com/decred/dcrd/lru"

	"github.com/emberlabs/emberd/chaincfg"
	"github.com/emberlabs/emberd/log"
	"github.com/emberlabs/emberd/wire"
)

// maxAnnouncedAddrs is the maximum number of address announcements the
// manager remembers for duplicate suppression.
const maxAnnouncedAddrs = 5000

// AddrManager provides a concurrency safe address book for caching potential
// peers on the ember network.  It is bootstrapped from the static seed table
// of the active network and grows from addr announcements.
type AddrManager struct {
	mtx       sync.Mutex
	addrIndex map[string]*wire.NetAddress

	// announced tracks addresses that were recently relayed so repeated
	// announcements of the same peer are suppressed.
	announced lru.Cache
}

// NetAddressKey returns a string key in the form of ip:port for IPv4
// addresses or [ip]:port for IPv6 addresses.
func NetAddressKey(na *wire.NetAddress) string {
	port := strconv.FormatUint(uint64(na.Port), 10)
	return net.JoinHostPort(na.ToIP().String(), port)
}

// New returns a new address manager seeded with the static addresses of the
// given network parameters.
func New(params *chaincfg.Params) *AddrManager {
	a := &AddrManager{
		addrIndex: make(map[string]*wire.NetAddress),
		announced: lru.NewCache(maxAnnouncedAddrs),
	}
	for i := range params.SeedAddrs {
		na := params.SeedAddrs[i]
		a.addrIndex[NetAddressKey(&na)] = &na
	}
	log.AmgrLog.Infof("Loaded %d seed addresses for %s",
		len(a.addrIndex), params.Name)
	return a
}

// AddAddress adds a new address to the manager.  Duplicates by ip:port are
// collapsed.
func (a *AddrManager) AddAddress(na *wire.NetAddress) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	key := NetAddressKey(na)
	if _, ok := a.addrIndex[key]; ok {
		return
	}
	a.addrIndex[key] = na
	log.AmgrLog.Tracef("Added new address %s (total %d)", key,
		len(a.addrIndex))
}

// HasAddress returns whether the manager knows the given address.
func (a *AddrManager) HasAddress(na *wire.NetAddress) bool {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	_, ok := a.addrIndex[NetAddressKey(na)]
	return ok
}

// AddressCount returns the number of addresses known to the manager.
func (a *AddrManager) AddressCount() int {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	return len(a.addrIndex)
}

// Addresses returns all addresses currently known to the manager.
func (a *AddrManager) Addresses() []*wire.NetAddress {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	addrs := make([]*wire.NetAddress, 0, len(a.addrIndex))
	for _, na := range a.addrIndex {
		addrs = append(addrs, na)
	}
	return addrs
}

// FilterAnnounced returns the subset of the given addresses that have not
// been relayed recently and marks them as relayed.  The tracking is bounded
// by an lru cache, so long-quiet addresses become announceable again.
func (a *AddrManager) FilterAnnounced(addrs []*wire.NetAddress) []*wire.NetAddress {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	fresh := make([]*wire.NetAddress, 0, len(addrs))
	for _, na := range addrs {
		key := NetAddressKey(na)
		if a.announced.Contains(key) {
			continue
		}
		a.announced.Add(key)
		fresh = append(fresh, na)
	}
	return fresh
}
