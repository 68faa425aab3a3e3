// Package gobwire decodes (and, for the seven primitive wire types,
// encodes) the self-describing binary interchange format popularly
// known as "gob".
//
// A value stream is a sequence of self-delimiting messages. Each
// message either registers a custom compound type under a fresh
// positive type id, or transmits a value whose type id has already
// been made known — either one of the built-ins or a previously
// registered compound type. See Session for the entry point into a
// decoding session, and Encode for the primitive encoder.
package gobwire
