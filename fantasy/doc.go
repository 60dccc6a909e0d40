// Package fantasy contains the typed domain model for Yahoo Fantasy Sports
// API payloads, together with the schema registry, the generic unpacker that
// canonicalizes Yahoo's irregular JSON shapes, the key-path navigator, and
// the generic entity builder.
//
// Yahoo responses mix plain objects, numeric-string-indexed pseudo-lists
// ({"0": ..., "1": ..., "count": 2}) and lists of single-key wrapper dicts
// ([{"team": ...}, {"team": ...}]). Everything in this package reduces those
// shapes to one canonical form: a mapping from field name to scalar, nested
// entity, or ordered sequence of entities.
package fantasy
