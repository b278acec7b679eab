package dper

// Secondary zone definitions for named.conf, one per zone.
const bindTemplate = `{{range .Zones}}{{with $.Name}}# {{.}}
{{end}}zone "{{.Name}}" {
	type slave;
	file "{{.File}}";
	masters { {{range $.Masters}}{{.}}; {{end}}};
	allow-notify { {{range $.Addresses}}{{.}}; {{end}}};
	allow-transfer { none; };
};

{{end}}`

// Zone sections for nsd.conf, one per zone.
const nsdTemplate = `{{range .Zones}}{{with $.Name}}# {{.}}
{{end}}zone:
	name: "{{.Name}}"
	zonefile: "{{.File}}"
{{range $.Notify}}	allow-notify: {{.}}
{{end}}{{range $.Notify}}	request-xfr: {{.}}
{{end}}
{{end}}`

// Remote, ACL and zone sections for knot.conf, one set per peer.
const knotTemplate = `{{with .Name}}# {{.}}
{{end}}remote:
{{range .Remotes}}  - id: {{.ID}}
    address: {{.Address}}
{{with .Key}}    key: {{.}}
{{end}}{{end}}
acl:
{{range .Remotes}}  - id: {{.ID}}
    remote: {{.ID}}
    action: [notify, transfer]
{{end}}
zone:
{{range .Zones}}  - domain: {{.Name}}
    file: {{.File}}
{{with $.Template}}    template: {{.}}
{{end}}    master: [{{join $.RemoteIDs ", "}}]
    acl: [{{join $.ACLs ", "}}]
{{end}}
`
