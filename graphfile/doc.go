// Package graphfile reads, indexes and writes sorted colored de Bruijn graph
// files.
//
// File layout:
//
//	"CORTEX"                                  6-byte magic
//	uint32 version (6), k-mer size, k-mer bits, color count
//	per color: uint32 mean read length
//	per color: uint64 total sequence length
//	per color: uint32 length + bytes          sample name
//	per color: 16 bytes                       error rate (not parsed)
//	per color: 4 × bool, 2 × uint32, uint32 length + bytes
//	                                          cleaning flags, thresholds, graph name
//	"CORTEX"                                  header terminator
//	numRecords × record                       see package record
//
// Header integers are little-endian; booleans take one byte.
//
// Reading:
//
//   - Open(path, opts...) parses and validates the header immediately and
//     fails fast with a *FormatError. The record region must hold a whole
//     number of records.
//   - Next / Iterate / All walk records in file order through one cursor;
//     Seek(i) repositions it in O(1).
//   - RecordAt(i) and FindRecord(k) are random access and leave the cursor
//     alone. FindRecord is an iterative binary search over packed k-mer bytes.
//   - Decoded records are memoized in an LRU keyed by record index and by
//     packed k-mer, sharing one capacity (WithCacheSize). Eviction only
//     affects speed; CacheStats exposes hit counters.
//   - WithMmap(false) swaps the memory mapping for positioned reads.
//
// Writing:
//
//	w, err := graphfile.CreateWithHeader(path, graphfile.NewHeader(31, colors...))
//	for _, r := range sorted {
//	    if err := w.Append(r); err != nil { ... }
//	}
//	err = w.Close()
//
// Errors:
//
//   - *FormatError    (errors.Is ErrFormat)     bad magic, version, truncation.
//   - *IntegrityError (errors.Is ErrNotSorted)  records observed out of order.
//   - ErrClosed, ErrNegativeIndex, ErrIndexOutOfRange, ErrHeaderNotSet,
//     ErrHeaderAlreadySet, ErrRecordShape, ErrKmerSize: programmer errors.
//   - A lookup miss is not an error: FindRecord returns found == false.
//
// Concurrency:
//
//	Graph and Writer are not synchronized. Independent handles to the same
//	file are safe to use from different goroutines because each has its own
//	mapping and cache.
package graphfile
