package dper

import (
	"fmt"
	"strings"
)

// Peer is a secondary-service relationship. It groups the primary servers
// zones are transferred from with the zones themselves.
type Peer struct {
	// Name is optional. Peers loaded through a feed are named <feed>/<name>.
	Name      string
	Primaries []Primary
	Zones     []string
}

// Primary is an upstream authoritative server. Key is the name of the TSIG
// key used to authenticate transfers and notifies, empty if none.
type Primary struct {
	Address string
	Key     string
}

// Used in place of a key name by dialects that need an explicit "no key".
const noKey = "NOKEY"

// KeyOrNone returns the TSIG key name or NOKEY if the primary has no key.
func (p Primary) KeyOrNone() string {
	if p.Key == "" {
		return noKey
	}
	return p.Key
}

// Returns the name that identifies the peer's primaries in dialects that
// need one. Unnamed peers are numbered by their position in the list.
func remoteBase(index int, p Peer) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("peer%d", index+1)
}

// ZoneFile returns the name of the file a zone is stored in, relative to
// the zone directory. Names are lowercased and any / (as used in classless
// reverse delegations) replaced with -.
func ZoneFile(zone string) string {
	return strings.ReplaceAll(strings.ToLower(zone), "/", "-")
}
