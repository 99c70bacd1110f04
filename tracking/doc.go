// Package tracking persists the user's tracked-route list across sessions.
//
// The list is an ordered set of route ids written to a plain text file, one
// id per line, after every mutation. It is the only durable state in the
// assistant; everything else is rebuilt from the GTFS feeds.
package tracking
