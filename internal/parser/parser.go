// Package parser turns text lines into prefixes. A line holds either CIDR
// notation or a bare address, which is read as a /32 or /128 host.
package parser

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/ak7sky/net-reduce/internal/core/model"
)

var ErrMalformedPrefix = errors.New("malformed prefix")

const commentMark = "#"

// Failure is a line that could not be parsed.
type Failure struct {
	LineNum int
	Text    string
	Err     error
}

func (failure Failure) Error() string {
	return fmt.Sprintf("line %d: %v", failure.LineNum, failure.Err)
}

func (failure Failure) Unwrap() error {
	return failure.Err
}

// ParseLine parses one line. Surrounding whitespace is ignored, host bits
// beyond the prefix length are cleared, and the untrimmed line is kept as
// the prefix text.
func ParseLine(line string) (*model.Prefix, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil, fmt.Errorf("%w: empty line", ErrMalformedPrefix)
	}

	var (
		addr    netip.Addr
		maskLen int
	)
	if strings.Contains(text, "/") {
		pfx, err := netip.ParsePrefix(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedPrefix, text, err)
		}
		addr, maskLen = pfx.Addr(), pfx.Bits()
	} else {
		ip, err := netip.ParseAddr(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedPrefix, text, err)
		}
		if ip.Zone() != "" {
			return nil, fmt.Errorf("%w: %q: zoned address", ErrMalformedPrefix, text)
		}
		addr, maskLen = ip, ip.BitLen()
	}

	if addr.Is4() {
		return model.NewPrefix(model.IPv4, model.AddrFrom4(addr.As4()), maskLen, line)
	}
	return model.NewPrefix(model.IPv6, model.AddrFrom16(addr.As16()), maskLen, line)
}

// ParseLines parses every line, skipping blank lines and comments. Lines
// that fail to parse are returned as failures and left out of the result.
func ParseLines(lines []string) ([]*model.Prefix, []Failure) {
	prefixes := make([]*model.Prefix, 0, len(lines))
	var failures []Failure

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentMark) {
			continue
		}
		prefix, err := ParseLine(line)
		if err != nil {
			failures = append(failures, Failure{LineNum: i + 1, Text: line, Err: err})
			continue
		}
		prefixes = append(prefixes, prefix)
	}

	return prefixes, failures
}
