// Package lookup retrieves values by key from anything shaped like a map:
// real hash maps, ordered lists of pairs, raw iter.Seq2 sequences and
// deserialized YAML mappings, all through one set of functions.
//
// # Fast path and fallback scan
//
// Every collection is a Source, which can enumerate its pairs in order. A
// Source that can also answer Lookup(key) in constant time implements Hashed.
// Get tries Lookup first and, when the source cannot vouch for a miss, scans
// the pairs front to back comparing keys with ==. The first matching pair
// wins, so duplicate keys in a pair list resolve to the earliest entry.
//
//	src := lookup.FromPairs(
//	    tuple.NewTuple2("region", "eu-west-1"),
//	    tuple.NewTuple2("replicas", "3"),
//	)
//	region, ok := lookup.Get(src, "region")
//	replicas, ok := lookup.TryInt(src, "replicas")
//
// # Failure reporting
//
// Nothing in this package panics on bad data. A nil source, a missing key and
// (for the Try helpers) an unparseable value all report not-found. The Parse
// helpers keep the distinction: they return errors wrapping
// errors.ErrKeyNotFound or errors.ErrMalformedValue.
//
// # Observability
//
// Calls are counted in Prometheus (see Metrics) and, when a logger is supplied
// with WithLogger, fallback scans and parse failures are logged at debug level.
package lookup
