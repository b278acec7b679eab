/*
Package dper generates secondary zone configuration for DNS servers from
documents describing peering relationships. There are 3 fundamental types of
objects available in this library.

Peers

A peer groups the primary servers zones are transferred from with the zones
themselves. Primaries are identified by IP address and can carry the name of a
TSIG key used to authenticate transfers. Peers are validated before any
configuration is produced.

Feeds

Feeds read peer documents through a loader, from memory, local files or
HTTP(S) servers, and decode them. Documents can be in XML, or JSON and YAML
for single-peer documents. The HTTP loader can keep a local cache to avoid
downloading unchanged documents and to survive unreachable servers.

Renderers

Renderers write the configuration for a list of peers in the dialect of a
DNS server implementation. BIND, NSD and Knot are supported.
*/
package dper
