package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func v4(a, b, c, d byte) Addr {
	return AddrFrom4([4]byte{a, b, c, d})
}

func TestNewPrefix(t *testing.T) {
	testCases := []struct {
		name       string
		family     Family
		addr       Addr
		maskLen    int
		expAddr    Addr
		expHost    bool
		expErr     error
		expCanonic string
	}{
		{
			name:       "10.1.2.3/8 masked to 10.0.0.0/8",
			family:     IPv4,
			addr:       v4(10, 1, 2, 3),
			maskLen:    8,
			expAddr:    v4(10, 0, 0, 0),
			expCanonic: "10.0.0.0/8",
		},
		{
			name:       "host 192.168.1.5/32",
			family:     IPv4,
			addr:       v4(192, 168, 1, 5),
			maskLen:    32,
			expAddr:    v4(192, 168, 1, 5),
			expHost:    true,
			expCanonic: "192.168.1.5/32",
		},
		{
			name:       "0.0.0.0/0",
			family:     IPv4,
			addr:       v4(255, 1, 2, 3),
			maskLen:    0,
			expAddr:    Addr{},
			expCanonic: "0.0.0.0/0",
		},
		{
			name:       "2001:db8::1/32 masked",
			family:     IPv6,
			addr:       AddrFrom16([16]byte{0x20, 0x01, 0x0d, 0xb8, 15: 1}),
			maskLen:    32,
			expAddr:    AddrFrom16([16]byte{0x20, 0x01, 0x0d, 0xb8}),
			expCanonic: "2001:db8::/32",
		},
		{
			name:       "ipv6 /72 masks into low half",
			family:     IPv6,
			addr:       AddrFrom16([16]byte{0x20, 0x01, 8: 0xab, 9: 0xff, 15: 1}),
			maskLen:    72,
			expAddr:    AddrFrom16([16]byte{0x20, 0x01, 8: 0xab}),
			expCanonic: "2001::ab00:0:0:0/72",
		},
		{
			name:    "ipv4 /33 rejected",
			family:  IPv4,
			addr:    v4(10, 0, 0, 0),
			maskLen: 33,
			expErr:  ErrInvalidPrefixLength,
		},
		{
			name:    "ipv6 /129 rejected",
			family:  IPv6,
			maskLen: 129,
			expErr:  ErrInvalidPrefixLength,
		},
		{
			name:    "negative length rejected",
			family:  IPv4,
			maskLen: -1,
			expErr:  ErrInvalidPrefixLength,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			prefix, err := NewPrefix(tc.family, tc.addr, tc.maskLen, "text")
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				require.Nil(t, prefix)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expAddr, prefix.Addr)
			require.Equal(t, tc.expHost, prefix.IsHost())
			require.Equal(t, tc.expCanonic, prefix.String())
			require.Equal(t, "text", prefix.Text)
		})
	}
}

func TestPrefix_Contains(t *testing.T) {
	mustPrefix := func(family Family, addr Addr, maskLen int) *Prefix {
		prefix, err := NewPrefix(family, addr, maskLen, "")
		require.NoError(t, err)
		return prefix
	}

	testCases := []struct {
		name     string
		outer    *Prefix
		inner    *Prefix
		expected bool
	}{
		{
			name:     "192.163.1.1 in 192.163.0.0/16",
			outer:    mustPrefix(IPv4, v4(192, 163, 0, 0), 16),
			inner:    mustPrefix(IPv4, v4(192, 163, 1, 1), 32),
			expected: true,
		},
		{
			name:     "192.164.235.74 not in 192.163.0.0/16",
			outer:    mustPrefix(IPv4, v4(192, 163, 0, 0), 16),
			inner:    mustPrefix(IPv4, v4(192, 164, 235, 74), 32),
			expected: false,
		},
		{
			name:     "10.0.0.0/24 in 10.0.0.0/16",
			outer:    mustPrefix(IPv4, v4(10, 0, 0, 0), 16),
			inner:    mustPrefix(IPv4, v4(10, 0, 0, 0), 24),
			expected: true,
		},
		{
			name:     "10.0.0.0/16 not in 10.0.0.0/24",
			outer:    mustPrefix(IPv4, v4(10, 0, 0, 0), 24),
			inner:    mustPrefix(IPv4, v4(10, 0, 0, 0), 16),
			expected: false,
		},
		{
			name:     "prefix contains itself",
			outer:    mustPrefix(IPv4, v4(10, 0, 0, 0), 8),
			inner:    mustPrefix(IPv4, v4(10, 0, 0, 0), 8),
			expected: true,
		},
		{
			name:     "families never contain each other",
			outer:    mustPrefix(IPv6, Addr{}, 0),
			inner:    mustPrefix(IPv4, v4(10, 0, 0, 0), 8),
			expected: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, tc.outer.Contains(tc.inner))
		})
	}
}

func TestAddr_Bit(t *testing.T) {
	addr := v4(0x80, 0, 0, 1)
	require.Equal(t, uint8(1), addr.Bit(0))
	require.Equal(t, uint8(0), addr.Bit(1))
	require.Equal(t, uint8(1), addr.Bit(31))
	require.Equal(t, uint8(0), addr.Bit(32))

	addr6 := AddrFrom16([16]byte{15: 1})
	require.Equal(t, uint8(1), addr6.Bit(127))
	require.Equal(t, uint8(0), addr6.Bit(63))
	require.Equal(t, [16]byte{15: 1}, addr6.As16())
}
