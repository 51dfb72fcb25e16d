// Package filecache implements a keyed, format-agnostic file cache: an in-memory
// collection of records keyed by their own ID that is saved to, and restored from,
// a single file in one of two interchangeable formats.
//
// Components:
//   - Record[T]: the capability set a stored type provides (identity, structured
//     and delimited-text encoding, and "static" parsers called on the zero T).
//   - Cache[T]: the map plus Add/Remove/Items and Save/Load.
//   - Resolver: turns a logical file name into a path (Dir, UserDir).
//   - codec.Document: encoding of the structured format (JSON by default; CBOR,
//     Msgpack, YAML and Protobuf are available).
//
// Formats:
//
//	FormatJSON - one top-level array, one element per record (JSONValue)
//	FormatCSV  - header line, then one CSVRow per line; the first line is always
//	             skipped on load
//
// Load drops records whose parser rejects them and keeps the rest. Every other
// failure is returned as an *OpError that unwraps to one of ErrDirectoryUnresolvable,
// ErrIncorrectData, ErrCannotSaveData or ErrCannotLoadData, and leaves the cache as it
// was. A Cache is not safe for concurrent use.
package filecache
