package model

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"net/netip"
)

var ErrInvalidPrefixLength = errors.New("invalid prefix length")

type Family uint8

const (
	IPv4 Family = iota + 1
	IPv6
)

// Bits returns the address width of the family.
func (family Family) Bits() uint8 {
	if family == IPv4 {
		return 32
	}
	return 128
}

func (family Family) String() string {
	switch family {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return fmt.Sprintf("Family(%d)", uint8(family))
	}
}

// Addr is a 128-bit address. IPv4 addresses are left-aligned and occupy
// the top 32 bits of hi.
type Addr struct {
	hi, lo uint64
}

func AddrFrom4(ip [4]byte) Addr {
	return Addr{hi: uint64(ip[0])<<56 | uint64(ip[1])<<48 | uint64(ip[2])<<40 | uint64(ip[3])<<32}
}

func AddrFrom16(ip [16]byte) Addr {
	var addr Addr
	for i := 0; i < 8; i++ {
		addr.hi = addr.hi<<8 | uint64(ip[i])
		addr.lo = addr.lo<<8 | uint64(ip[i+8])
	}
	return addr
}

// Bit returns the i-th most significant bit of the address, 0 or 1.
func (addr Addr) Bit(i uint8) uint8 {
	if i < 64 {
		return uint8(addr.hi>>(63-i)&1)
	}
	return uint8(addr.lo>>(127-i)&1)
}

func (addr Addr) Mask(maskLen uint8) Addr {
	hiMask, loMask := calcMask(maskLen)
	return Addr{hi: addr.hi & hiMask, lo: addr.lo & loMask}
}

func (addr Addr) As4() [4]byte {
	return [4]byte{byte(addr.hi >> 56), byte(addr.hi >> 48), byte(addr.hi >> 40), byte(addr.hi >> 32)}
}

func (addr Addr) As16() [16]byte {
	var ip [16]byte
	for i := 0; i < 8; i++ {
		ip[i] = byte(addr.hi >> (56 - 8*i))
		ip[i+8] = byte(addr.lo >> (56 - 8*i))
	}
	return ip
}

func calcMask(maskLen uint8) (hi, lo uint64) {
	switch {
	case maskLen == 0:
		return 0, 0
	case maskLen <= 64:
		return bits.Reverse64(math.MaxUint64 >> (64 - maskLen)), 0
	default:
		return math.MaxUint64, bits.Reverse64(math.MaxUint64 >> (128 - maskLen))
	}
}

// Key identifies a prefix by value, regardless of its textual form.
type Key struct {
	Family  Family
	Addr    Addr
	MaskLen uint8
}

// Prefix is a canonical network prefix with the line it was parsed from.
// Addr never has bits set beyond MaskLen.
type Prefix struct {
	Family  Family
	Addr    Addr
	MaskLen uint8
	Text    string
}

func NewPrefix(family Family, addr Addr, maskLen int, text string) (*Prefix, error) {
	if family != IPv4 && family != IPv6 {
		return nil, fmt.Errorf("unknown address family %s", family)
	}
	if maskLen < 0 || maskLen > int(family.Bits()) {
		return nil, fmt.Errorf("%w: /%d for %s", ErrInvalidPrefixLength, maskLen, family)
	}
	return &Prefix{
		Family:  family,
		Addr:    addr.Mask(uint8(maskLen)),
		MaskLen: uint8(maskLen),
		Text:    text,
	}, nil
}

// IsHost reports whether the prefix is a single address.
func (prefix *Prefix) IsHost() bool {
	return prefix.MaskLen == prefix.Family.Bits()
}

func (prefix *Prefix) Key() Key {
	return Key{Family: prefix.Family, Addr: prefix.Addr, MaskLen: prefix.MaskLen}
}

// Contains reports whether other lies within prefix. A prefix contains itself.
func (prefix *Prefix) Contains(other *Prefix) bool {
	if prefix.Family != other.Family || prefix.MaskLen > other.MaskLen {
		return false
	}
	return other.Addr.Mask(prefix.MaskLen) == prefix.Addr
}

// String returns the canonical CIDR notation.
func (prefix *Prefix) String() string {
	var ip netip.Addr
	if prefix.Family == IPv4 {
		ip = netip.AddrFrom4(prefix.Addr.As4())
	} else {
		ip = netip.AddrFrom16(prefix.Addr.As16())
	}
	return netip.PrefixFrom(ip, int(prefix.MaskLen)).String()
}
