// Package netconfig validates VNI network configurations: CIDR syntax,
// network membership of the gateway and the usable IP range, and range
// ordering. It works on dotted-quad strings and unsigned 32-bit words so
// that every message can name the exact offending input.
package netconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity of a validation result.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Result of validating a network configuration. A warning result has
// IsValid false but is not submission-blocking; only errors are.
type Result struct {
	IsValid  bool
	Message  string
	Severity Severity
}

// ParseIPv4 converts a dotted-quad address to a 32-bit unsigned integer.
// The address must have exactly 4 octets, each an integer in [0,255];
// forms the stdlib tolerates (leading zeros aside, "::ffff:..." etc.) are
// rejected because the console rejects them.
func ParseIPv4(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("invalid IPv4 address %q: expected 4 octets", s)
	}

	var value uint32
	for _, part := range parts {
		octet, err := strconv.Atoi(part)
		if err != nil || octet < 0 || octet > 255 {
			return 0, fmt.Errorf("invalid IPv4 address %q: octet %q out of range", s, part)
		}
		value = value<<8 | uint32(octet)
	}

	return value, nil
}

// ParseCIDR splits "a.b.c.d/n" into the network address and prefix length.
func ParseCIDR(s string) (network uint32, prefix int, err error) {
	addr, prefix, err := parseCIDRLoose(s)
	if err != nil {
		return 0, 0, err
	}

	network, err = ParseIPv4(addr)
	if err != nil {
		return 0, 0, err
	}

	return network, prefix, nil
}

// MaskFromPrefix returns the network mask for a prefix length. All
// arithmetic is unsigned; prefix 0 yields 0 and prefix 32 yields all ones
// (a naive signed 32-bit shift gets both wrong).
func MaskFromPrefix(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	if prefix >= 32 {
		return 0xFFFFFFFF
	}
	return 0xFFFFFFFF << (32 - uint(prefix))
}

// Validate checks that gateway, firstIP and lastIP all belong to the
// network described by cidr, that the range is ordered, and that the
// gateway sits outside the usable range. It returns nil when any input is
// empty: an incomplete form yields no verdict, which callers must not
// conflate with a valid one.
func Validate(gateway, firstIP, lastIP, cidr string) *Result {
	if gateway == "" || firstIP == "" || lastIP == "" || cidr == "" {
		return nil
	}

	networkAddr, prefix, err := parseCIDRLoose(cidr)
	if err != nil {
		return &Result{
			IsValid:  false,
			Message:  "Invalid CIDR format. Please use format like 192.168.1.0/24",
			Severity: SeverityError,
		}
	}

	gatewayNum, gwErr := ParseIPv4(gateway)
	firstNum, firstErr := ParseIPv4(firstIP)
	lastNum, lastErr := ParseIPv4(lastIP)
	networkNum, netErr := ParseIPv4(networkAddr)
	if gwErr != nil || firstErr != nil || lastErr != nil || netErr != nil {
		return &Result{
			IsValid:  false,
			Message:  "Invalid IP address format. Please check your IP addresses.",
			Severity: SeverityError,
		}
	}

	mask := MaskFromPrefix(prefix)
	expectedNetwork := networkNum & mask

	if gatewayNum&mask != expectedNetwork {
		return &Result{
			IsValid: false,
			Message: fmt.Sprintf(
				"Gateway %s is not in the network %s. Gateway must be in the same network as the IP range.",
				gateway, cidr),
			Severity: SeverityError,
		}
	}

	if firstNum&mask != expectedNetwork || lastNum&mask != expectedNetwork {
		return &Result{
			IsValid: false,
			Message: fmt.Sprintf(
				"IP range %s - %s is not in the network %s. All IPs must be in the same network.",
				firstIP, lastIP, cidr),
			Severity: SeverityError,
		}
	}

	if firstNum > lastNum {
		return &Result{
			IsValid:  false,
			Message:  "First IP must be less than or equal to Last IP.",
			Severity: SeverityError,
		}
	}

	// Gateway inside the usable range is suspicious but not fatal.
	if gatewayNum >= firstNum && gatewayNum <= lastNum {
		return &Result{
			IsValid: false,
			Message: fmt.Sprintf(
				"Gateway %s is within the IP range %s - %s. Gateway should be outside the IP range.",
				gateway, firstIP, lastIP),
			Severity: SeverityWarning,
		}
	}

	return &Result{
		IsValid:  true,
		Message:  fmt.Sprintf("Network configuration is valid. All IPs are in the network %s.", cidr),
		Severity: SeveritySuccess,
	}
}

// parseCIDRLoose separates prefix-length errors (reported as a CIDR format
// problem) from address errors (reported as an IP format problem), matching
// the console's two distinct messages.
func parseCIDRLoose(cidr string) (networkAddr string, prefix int, err error) {
	parts := strings.Split(cidr, "/")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid CIDR %q", cidr)
	}

	prefix, err = strconv.Atoi(parts[1])
	if err != nil || prefix < 0 || prefix > 32 {
		return "", 0, fmt.Errorf("invalid CIDR %q: bad prefix length", cidr)
	}

	return parts[0], prefix, nil
}

// IPCount returns the number of addresses in [firstIP, lastIP] inclusive,
// 0 when the range is reversed or either address does not parse.
func IPCount(firstIP, lastIP string) int {
	firstNum, err := ParseIPv4(firstIP)
	if err != nil {
		return 0
	}

	lastNum, err := ParseIPv4(lastIP)
	if err != nil {
		return 0
	}

	count := int64(lastNum) - int64(firstNum) + 1
	if count < 0 {
		return 0
	}

	return int(count)
}
