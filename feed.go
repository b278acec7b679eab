package dper

import (
	"github.com/jtacoma/uritemplates"
	"github.com/pkg/errors"
)

// Feed is a named source of peer documents in a given format.
type Feed struct {
	id     string
	loader Loader
	parse  ParseFunc
}

// NewFeed returns a feed that reads documents with the loader and decodes
// them according to format.
func NewFeed(id string, loader Loader, format string) (*Feed, error) {
	parse, err := Parser(format)
	if err != nil {
		return nil, err
	}
	return &Feed{id: id, loader: loader, parse: parse}, nil
}

// Peers loads and decodes the feed's document.
func (f *Feed) Peers() ([]Peer, error) {
	b, err := f.loader.Load()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load feed '%s'", f.id)
	}
	peers, err := f.parse(f.id, b)
	if err != nil {
		return nil, errors.Wrapf(err, "feed '%s'", f.id)
	}
	logger(f.id).WithField("peers", len(peers)).Debug("loaded feed")
	return peers, nil
}

func (f *Feed) String() string {
	return f.id
}

// LoadPeers reads all feeds in order and returns the combined list of peers.
// It stops at the first feed that fails.
func LoadPeers(feeds ...*Feed) ([]Peer, error) {
	var peers []Peer
	for _, f := range feeds {
		p, err := f.Peers()
		if err != nil {
			return nil, err
		}
		peers = append(peers, p...)
	}
	return peers, nil
}

// ExpandSource processes a feed source given as URI template, such as
// "https://example.net/dper/{peer}.{format}". Sources without placeholders
// are returned unchanged.
func ExpandSource(source, id, format string) (string, error) {
	t, err := uritemplates.Parse(source)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse source '%s'", source)
	}
	return t.Expand(map[string]interface{}{
		"peer":   id,
		"format": format,
	})
}
