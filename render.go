package dper

import (
	"fmt"
	"io"
)

// Renderer writes the server configuration for a list of validated peers.
type Renderer interface {
	Render(w io.Writer, peers []Peer) error
}

// RenderOptions holds options common to all output dialects.
type RenderOptions struct {
	// Prefix prepended to every zone file name. Typically a directory with a
	// trailing slash.
	ZoneDir string

	// Knot only: configuration template referenced by every zone.
	Template string

	// Knot only: ACL applied to every zone in addition to the per-peer ones.
	ACL string
}

// Formats lists the supported output dialects.
var Formats = []string{"bind", "nsd", "knot"}

// NewRenderer returns a renderer for the given output dialect.
func NewRenderer(format string, opt RenderOptions) (*TemplateRenderer, error) {
	var text string
	switch format {
	case "bind":
		text = bindTemplate
	case "nsd":
		text = nsdTemplate
	case "knot":
		text = knotTemplate
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", format)
	}
	tpl, err := NewTemplate(format, text)
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{format: format, tpl: tpl, opt: opt}, nil
}

// TemplateRenderer produces configuration from a fixed per-dialect template
// that is applied once per peer.
type TemplateRenderer struct {
	format string
	tpl    *Template
	opt    RenderOptions
}

var _ Renderer = &TemplateRenderer{}

// Render writes the configuration for all peers to w. Peers are expected to
// have passed Validate.
func (r *TemplateRenderer) Render(w io.Writer, peers []Peer) error {
	for i, p := range peers {
		text, err := r.tpl.Apply(r.input(i, p))
		if err != nil {
			return fmt.Errorf("failed to render peer '%s': %w", p.Name, err)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		logger(p.Name).WithField("format", r.format).Debug("rendered peer")
	}
	return nil
}

func (r *TemplateRenderer) String() string {
	return r.format
}

func (r *TemplateRenderer) input(index int, p Peer) templateInput {
	in := templateInput{
		Name:     p.Name,
		Template: r.opt.Template,
	}
	if r.opt.ACL != "" {
		in.ACLs = append(in.ACLs, r.opt.ACL)
	}

	// Knot needs an identifier for every remote, derived from the peer
	base := remoteBase(index, p)

	for n, primary := range p.Primaries {
		master := primary.Address
		if primary.Key != "" {
			master += " key " + primary.Key
		}
		in.Masters = append(in.Masters, master)
		in.Notify = append(in.Notify, primary.Address+" "+primary.KeyOrNone())
		in.Addresses = append(in.Addresses, primary.Address)

		id := fmt.Sprintf("%s/%d", base, n+1)
		in.Remotes = append(in.Remotes, remoteInput{ID: id, Address: primary.Address, Key: primary.Key})
		in.RemoteIDs = append(in.RemoteIDs, id)
		in.ACLs = append(in.ACLs, id)
	}
	for _, zone := range p.Zones {
		in.Zones = append(in.Zones, zoneInput{
			Name: zone,
			File: r.opt.ZoneDir + ZoneFile(zone),
		})
	}
	return in
}
