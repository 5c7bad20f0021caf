// Package ipaddr converts between dotted-quad IPv4 addresses and the integers
// written to address files.
package ipaddr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
)

var ErrNotIPv4 = errors.New("not an IPv4 address")

// ToUint32 returns the big-endian integer form of an IPv4 (or IPv4-mapped
// IPv6) address.
func ToUint32(addr netip.Addr) (uint32, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0, fmt.Errorf("%w: %s", ErrNotIPv4, addr)
	}
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:]), nil
}

// FromUint32 is the inverse of ToUint32.
func FromUint32(n uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], n)
	return netip.AddrFrom4(b)
}

// Parse parses a dotted-quad string into its integer form.
func Parse(s string) (uint32, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return 0, err
	}
	return ToUint32(addr)
}
