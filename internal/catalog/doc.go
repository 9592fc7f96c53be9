// Package catalog holds the static inventory the populator draws from: user
// and department names, the Windows-like directory topology, document
// templates with their placeholders, file extension sets, log types, and the
// deleted-file scenarios. Data only, no behavior beyond lookups.
package catalog
