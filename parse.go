package dper

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseFunc decodes a peer document. The id is used to name the peers it
// contains, it can be empty.
type ParseFunc func(id string, data []byte) ([]Peer, error)

// Parser returns the decoder for a document format, one of "xml", "json"
// or "yaml".
func Parser(format string) (ParseFunc, error) {
	switch format {
	case "xml":
		return ParseXML, nil
	case "json":
		return ParseJSON, nil
	case "yaml":
		return ParseYAML, nil
	default:
		return nil, fmt.Errorf("unsupported document format '%s'", format)
	}
}

type xmlDocument struct {
	Peers []xmlPeer `xml:"peer"`
}

type xmlPeer struct {
	Name      string       `xml:"name,attr"`
	Primaries []xmlPrimary `xml:"primary"`
	Zones     []string     `xml:"zone"`
}

type xmlPrimary struct {
	Address string `xml:",chardata"`
	TSIG    string `xml:"tsig,attr"`
	Key     string `xml:"key,attr"` // alias for tsig
}

// ParseXML reads a document with one or more <peer> elements under the root.
//
//	<peers>
//	  <peer name="example">
//	    <primary tsig="shared-key">192.0.2.1</primary>
//	    <zone>example.com</zone>
//	  </peer>
//	</peers>
func ParseXML(id string, data []byte) ([]Peer, error) {
	logger(id).Debug("reading peer document as xml")
	var doc xmlDocument
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse xml document")
	}
	peers := make([]Peer, 0, len(doc.Peers))
	for _, p := range doc.Peers {
		peer := Peer{Name: peerName(id, strings.TrimSpace(p.Name))}
		for _, primary := range p.Primaries {
			key := primary.TSIG
			if key == "" {
				key = primary.Key
			}
			peer.Primaries = append(peer.Primaries, Primary{
				Address: strings.TrimSpace(primary.Address),
				Key:     strings.TrimSpace(key),
			})
		}
		for _, zone := range p.Zones {
			peer.Zones = append(peer.Zones, trimZone(zone))
		}
		peers = append(peers, peer)
	}
	return peers, nil
}

// Single-peer document layout used by the json and yaml formats.
type flatDocument struct {
	Masters []struct {
		IP   string `json:"ip" yaml:"ip"`
		TSIG string `json:"tsig" yaml:"tsig"`
	} `json:"masters" yaml:"masters"`
	Zones []string `json:"zones" yaml:"zones"`
}

func (d flatDocument) peers(id string) []Peer {
	peer := Peer{Name: id}
	for _, m := range d.Masters {
		peer.Primaries = append(peer.Primaries, Primary{Address: m.IP, Key: m.TSIG})
	}
	for _, zone := range d.Zones {
		peer.Zones = append(peer.Zones, trimZone(zone))
	}
	logger(id).WithField("zones", len(peer.Zones)).Debug("read peer document")
	return []Peer{peer}
}

// ParseJSON reads a document describing a single peer that is named after id.
func ParseJSON(id string, data []byte) ([]Peer, error) {
	logger(id).Debug("reading peer document as json")
	var doc flatDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse json document")
	}
	return doc.peers(id), nil
}

// ParseYAML reads the same single-peer layout as ParseJSON, in YAML.
func ParseYAML(id string, data []byte) ([]Peer, error) {
	logger(id).Debug("reading peer document as yaml")
	var doc flatDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse yaml document")
	}
	return doc.peers(id), nil
}

func peerName(id, name string) string {
	switch {
	case id == "":
		return name
	case name == "":
		return id
	default:
		return id + "/" + name
	}
}

// Zones are written without the trailing dot in all dialects.
func trimZone(zone string) string {
	zone = strings.TrimSpace(zone)
	if zone == "." {
		return zone
	}
	return strings.TrimSuffix(zone, ".")
}
