package validation

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

// LinkURLPattern defines the accepted bookmark URL format: an http or
// https scheme followed by at least one non-space character.
var LinkURLPattern = regexp.MustCompile(`^https?://\S+$`)

// ValidateLinkURL checks whether a URL is acceptable for saving.
func ValidateLinkURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}
	if !LinkURLPattern.MatchString(urlStr) {
		return false, "Invalid URL"
	}
	return true, ""
}

// ValidateSearchTerm checks whether a user-directory search term is
// usable. Only emptiness is rejected; matching is substring based.
func ValidateSearchTerm(term string) (bool, string) {
	if strings.TrimSpace(term) == "" {
		return false, "Search string is required"
	}
	return true, ""
}

// IsPrivateIP checks if an IP address is in a private/reserved range.
// Used to prevent SSRF attacks against internal networks.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}

	if ip.IsLoopback() {
		return true
	}

	if ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}

	if ip.IsPrivate() {
		return true
	}

	if ip.IsUnspecified() {
		return true
	}

	// Cloud metadata endpoints (AWS/GCP/Azure standard, plus Azure's
	// 168.63.129.16).
	if ip.Equal(net.ParseIP("169.254.169.254")) {
		return true
	}
	if ip.Equal(net.ParseIP("168.63.129.16")) {
		return true
	}

	return false
}

// IsPrivateHost checks if a hostname resolves to a private IP address.
// Returns true if the host is private/blocked, false if it's safe to access.
func IsPrivateHost(host string) (bool, error) {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		// If we can't resolve, be conservative and block
		return true, err
	}

	for _, ip := range ips {
		if IsPrivateIP(ip) {
			return true, nil
		}
	}

	return false, nil
}

// ValidateURLForFetch validates that a URL is safe to hand to the
// outbound enrichment fetch. Blocks private IPs, localhost, and cloud
// metadata endpoints.
func ValidateURLForFetch(urlStr string) (bool, string) {
	valid, msg := ValidateLinkURL(urlStr)
	if !valid {
		return false, msg
	}

	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return false, "Invalid URL"
	}

	isPrivate, err := IsPrivateHost(u.Host)
	if err != nil {
		return false, "Cannot resolve hostname"
	}
	if isPrivate {
		return false, "URL points to a private or reserved IP address"
	}

	return true, ""
}
