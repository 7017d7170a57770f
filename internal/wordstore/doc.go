// Package wordstore provides the named word lists used by word based
// strategies.
//
// MemoryStore serves lists held in memory, including the built-in
// dictionaries returned by Default. BoltStore keeps user supplied lists in a
// bbolt database, one JSON encoded []string per list in the "wordlists"
// bucket. Chain layers several stores so user lists can shadow built-in ones.
package wordstore
