package dper

import (
	"net"
	"regexp"
	"strings"

	"github.com/miekg/dns"
)

var (
	tsigNameRe = regexp.MustCompile(`^[a-z0-9._-]+$`)
	peerNameRe = regexp.MustCompile(`^[a-z0-9._/-]+$`)
	zoneNameRe = regexp.MustCompile(`^[a-z0-9.-]+$`)
)

// Validate checks every peer in order and returns an error for the first
// invalid record. It also rejects zones defined by more than one peer and
// peers sharing a name.
func Validate(peers []Peer) error {
	if len(peers) == 0 {
		return &ValidationError{Field: "document", Reason: "no peers defined"}
	}
	for _, p := range peers {
		if err := validatePeer(p); err != nil {
			return err
		}
	}
	return checkDuplicates(peers)
}

func validatePeer(p Peer) error {
	if p.Name != "" {
		if err := validPeerName(p.Name); err != nil {
			return err
		}
	}
	if len(p.Primaries) == 0 {
		return &ValidationError{Peer: p.Name, Field: "peer", Value: p.Name, Reason: "no primaries defined"}
	}
	for _, primary := range p.Primaries {
		if err := validAddress(primary.Address); err != nil {
			err.Peer = p.Name
			return err
		}
		if primary.Key == "" {
			continue
		}
		if err := validTSIGName(primary.Key); err != nil {
			err.Peer = p.Name
			return err
		}
	}
	for _, zone := range p.Zones {
		if err := validZoneName(zone); err != nil {
			err.Peer = p.Name
			return err
		}
	}
	logger(p.Name).WithField("zones", len(p.Zones)).Debug("peer valid")
	return nil
}

// Returns nil if addr is an IPv4 or IPv6 address literal.
func validAddress(addr string) *ValidationError {
	if net.ParseIP(addr) == nil {
		return &ValidationError{Field: "address", Value: addr}
	}
	return nil
}

// TSIG key names are matched as-is, uppercase characters are not allowed.
func validTSIGName(name string) *ValidationError {
	if !tsigNameRe.MatchString(name) {
		return &ValidationError{Field: "tsig name", Value: name}
	}
	return nil
}

// Peer names end up in comments and identifiers of the generated
// configuration. Same characters as TSIG names plus / for <feed>/<name>.
func validPeerName(name string) *ValidationError {
	if !peerNameRe.MatchString(name) {
		return &ValidationError{Field: "peer name", Value: name}
	}
	return nil
}

// Zone names are case-insensitive and checked in lowercase.
func validZoneName(zone string) *ValidationError {
	name := strings.ToLower(zone)
	if !zoneNameRe.MatchString(name) {
		return &ValidationError{Field: "zone", Value: zone}
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return &ValidationError{Field: "zone", Value: zone, Reason: "not a domain name"}
	}
	return nil
}

func checkDuplicates(peers []Peer) error {
	names := make(map[string]struct{})
	for i, p := range peers {
		name := remoteBase(i, p)
		if _, ok := names[name]; ok {
			return &ValidationError{Peer: name, Field: "peer name", Value: name, Reason: "defined more than once"}
		}
		names[name] = struct{}{}
	}

	seen := make(map[string]string)
	for _, p := range peers {
		for _, zone := range p.Zones {
			name := dns.CanonicalName(zone)
			if other, ok := seen[name]; ok {
				return &DuplicateZoneError{Zone: zone, First: other, Second: p.Name}
			}
			seen[name] = p.Name
		}
	}
	return nil
}
