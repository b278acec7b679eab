package dper

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeedPeers(t *testing.T) {
	loader := NewStaticLoader([]byte(`<peers><peer name="p"><primary>192.0.2.1</primary><zone>example.com</zone></peer></peers>`))
	f, err := NewFeed("feed1", loader, "xml")
	require.NoError(t, err)

	peers, err := LoadPeers(f)
	require.NoError(t, err)
	require.Len(t, peers, 1)
	require.Equal(t, "feed1/p", peers[0].Name)

	_, err = NewFeed("feed1", loader, "toml")
	require.Error(t, err)
}

func TestFeedFromFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "peer.json")
	require.NoError(t, os.WriteFile(name, []byte(`{"masters": [{"ip": "192.0.2.1"}], "zones": ["example.com"]}`), 0644))

	f, err := NewFeed("json1", NewFileLoader(name), "json")
	require.NoError(t, err)
	peers, err := f.Peers()
	require.NoError(t, err)
	require.Equal(t, []string{"example.com"}, peers[0].Zones)

	// Missing file
	f, err = NewFeed("missing", NewFileLoader(filepath.Join(dir, "missing.json")), "json")
	require.NoError(t, err)
	_, err = f.Peers()
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExpandSource(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"https://example.net/dper.xml", "https://example.net/dper.xml"},
		{"https://example.net/dper/{peer}.{format}", "https://example.net/dper/alpha.xml"},
		{"/etc/dper/{peer}.xml", "/etc/dper/alpha.xml"},
	}
	for _, test := range tests {
		s, err := ExpandSource(test.source, "alpha", "xml")
		require.NoError(t, err)
		require.Equal(t, test.expected, s)
	}
}
