package dper

import (
	"bytes"
	"strings"
	"text/template"
)

type Template struct {
	textTemplate *template.Template
}

func NewTemplate(name, text string) (*Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}
	textTemplate := template.New(name).Funcs(funcMap)
	textTemplate, err := textTemplate.Parse(text)
	if err != nil {
		return nil, err
	}

	return &Template{
		textTemplate: textTemplate,
	}, nil
}

// Data that is passed to the dialect templates, one per peer.
type templateInput struct {
	Name string

	// Masters holds one entry per primary, "<address>" or "<address> key <name>".
	Masters []string

	// Notify holds one entry per primary, "<address> <name>" or "<address> NOKEY".
	Notify []string

	// Addresses of all primaries, without annotation.
	Addresses []string

	Remotes   []remoteInput
	RemoteIDs []string
	ACLs      []string
	Template  string

	Zones []zoneInput
}

type zoneInput struct {
	Name string
	File string
}

type remoteInput struct {
	ID      string
	Address string
	Key     string
}

// Apply executes the template, e.g. replacing placeholders in the text
// with values from the peer.
func (t *Template) Apply(input templateInput) (string, error) {
	if t == nil {
		return "", nil
	}
	text := new(bytes.Buffer)
	err := t.textTemplate.Execute(text, input)
	return text.String(), err
}
