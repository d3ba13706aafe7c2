// Package ipaddress holds a single network address in one of two storage
// modes and renders it into caller-owned buffers.
//
// Binary mode keeps a family tag and a fixed [16]byte array. Text mode keeps
// an owned, pre-formatted string. The mode of an Address is fixed when it is
// created; BuildMode decides which one New hands out, so callers never need
// to branch on it.
package ipaddress

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
)

// Mode selects the backing representation of an Address.
type Mode uint8

const (
	// ModeBinary stores a family tag plus raw address bytes.
	ModeBinary Mode = iota + 1
	// ModeText stores an owned, pre-formatted address string.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeBinary:
		return "binary"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// Family is the address family of a binary-mode Address.
type Family uint8

const (
	FamilyUnset Family = 0
	FamilyIPv4  Family = 4
	FamilyIPv6  Family = 6
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return "unset"
	}
}

const (
	IPv4Len = 4
	IPv6Len = 16

	// Text buffer sizes including the NUL terminator (INET_ADDRSTRLEN and
	// INET6_ADDRSTRLEN).
	IPv4TextLen = 16
	IPv6TextLen = 46
)

var (
	ErrRender         = errors.New("failed to render address")
	ErrUnknownFamily  = errors.New("unknown address family")
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrModeMismatch   = errors.New("address mode mismatch")
	ErrInvalidText    = errors.New("invalid address text")
)

// Address is a single network address. It is owned by one caller at a time
// and does no internal locking.
type Address struct {
	mode   Mode
	family Family
	value  [IPv6Len]byte
	text   string
}

// New returns an unset Address in the build's storage mode.
func New() Address {
	return NewWithMode(BuildMode)
}

// NewWithMode returns an unset Address in the given mode. Unknown modes fall
// back to BuildMode.
func NewWithMode(mode Mode) Address {
	a := Address{mode: mode}
	a.Init()
	return a
}

// Init resets the address to the empty state of its mode. A zero Address
// adopts BuildMode.
func (a *Address) Init() {
	mode := a.mode
	if mode != ModeBinary && mode != ModeText {
		mode = BuildMode
	}
	*a = Address{mode: mode}
}

func (a Address) Mode() Mode {
	if a.mode == 0 {
		return BuildMode
	}
	return a.mode
}

// Family reports the binary family. Text-mode addresses always report
// FamilyUnset since they carry no family tag.
func (a Address) Family() Family {
	return a.family
}

// IsSet reports whether the address holds a value.
func (a Address) IsSet() bool {
	if a.Mode() == ModeText {
		return a.text != ""
	}
	return a.family == FamilyIPv4 || a.family == FamilyIPv6
}

// SetBytes stores raw address bytes. Only valid in binary mode.
func (a *Address) SetBytes(family Family, b []byte) error {
	if a.Mode() != ModeBinary {
		return fmt.Errorf("%w: raw bytes need binary mode, have %s", ErrModeMismatch, a.Mode())
	}

	var want int
	switch family {
	case FamilyIPv4:
		want = IPv4Len
	case FamilyIPv6:
		want = IPv6Len
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFamily, family)
	}
	if len(b) != want {
		return fmt.Errorf("%s address needs %d bytes, got %d", family, want, len(b))
	}

	a.Init()
	a.family = family
	copy(a.value[:], b)
	return nil
}

// SetText stores a pre-formatted address string. Only valid in text mode.
// The string is kept as given; it is not parsed.
func (a *Address) SetText(s string) error {
	if a.Mode() != ModeText {
		return fmt.Errorf("%w: text needs text mode, have %s", ErrModeMismatch, a.Mode())
	}
	if s == "" || strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidText, s)
	}

	a.Init()
	a.text = s
	return nil
}

// SetIP stores ip in whichever representation the address uses.
// Inputs that are neither 4 nor 16 bytes fail with ErrUnknownFamily in
// both modes.
func (a *Address) SetIP(ip net.IP) error {
	if len(ip) != net.IPv4len && len(ip) != net.IPv6len {
		return fmt.Errorf("%w: ip of length %d", ErrUnknownFamily, len(ip))
	}

	if a.Mode() == ModeText {
		return a.SetText(ip.String())
	}

	if v4 := ip.To4(); v4 != nil {
		return a.SetBytes(FamilyIPv4, v4)
	}
	return a.SetBytes(FamilyIPv6, ip)
}

// SetAddr stores a netip.Addr in whichever representation the address uses.
// Zones are dropped.
func (a *Address) SetAddr(addr netip.Addr) error {
	if !addr.IsValid() {
		return fmt.Errorf("%w: invalid addr", ErrUnknownFamily)
	}
	addr = addr.WithZone("")

	if a.Mode() == ModeText {
		return a.SetText(addr.String())
	}
	if addr.Is4() {
		b := addr.As4()
		return a.SetBytes(FamilyIPv4, b[:])
	}
	b := addr.As16()
	return a.SetBytes(FamilyIPv6, b[:])
}

// Render writes the address into buf as a NUL-terminated string and returns
// the number of address bytes written, excluding the terminator. len(buf) is
// the capacity; nothing is ever written at or past it.
//
// Binary addresses fail without touching buf when the full text and its
// terminator do not fit. Text addresses are truncated to fit and only fail
// when no address bytes can be copied.
func (a Address) Render(buf []byte) (int, error) {
	if a.Mode() == ModeText {
		return a.renderText(buf)
	}
	return a.renderBinary(buf)
}

func (a Address) renderBinary(buf []byte) (int, error) {
	var s string
	switch a.family {
	case FamilyIPv4:
		s = netip.AddrFrom4([IPv4Len]byte(a.value[:IPv4Len])).String()
	case FamilyIPv6:
		s = netip.AddrFrom16(a.value).String()
	default:
		return 0, fmt.Errorf("%w: %w: %s", ErrRender, ErrUnknownFamily, a.family)
	}

	if len(buf) < len(s)+1 {
		return 0, fmt.Errorf("%w: %w: need %d bytes, have %d", ErrRender, ErrBufferTooSmall, len(s)+1, len(buf))
	}

	n := copy(buf, s)
	buf[n] = 0
	return n, nil
}

func (a Address) renderText(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("%w: %w: zero capacity", ErrRender, ErrBufferTooSmall)
	}

	n := copy(buf[:len(buf)-1], a.text)
	buf[n] = 0
	if n == 0 {
		return 0, fmt.Errorf("%w: nothing to copy", ErrRender)
	}
	return n, nil
}

// String renders the address into an IPv6-sized buffer. Unset addresses
// render as the empty string.
func (a Address) String() string {
	var buf [IPv6TextLen]byte
	n, err := a.Render(buf[:])
	if err != nil {
		return ""
	}
	return string(buf[:n])
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Release drops any owned string and returns the address to its empty state.
// Calling it again is a no-op.
func (a *Address) Release() {
	if a.Mode() == ModeText && a.text != "" {
		a.text = ""
	}
	a.Init()
}
