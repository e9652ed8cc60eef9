// Package chunkio provides the byte-cursor buffer that chunk codecs read from and
// write to, along with error types and the contract checking used across the module.
//
// Contract checks guard preconditions (payload sizes, element counts, index ranges).
// They run only when Debug is true; a failed check logs through ContractLog and
// panics with an Error wrapping ErrContract. Building with -tags chunkrelease sets
// Debug to false and compiles every check away, leaving violated preconditions
// undefined. Decode and encode paths never return errors; a chunk either fully
// decodes its payload or the operation is a contract violation.
package chunkio

// TooBig is a byte count used for simple sanity checking before allocation.
// By default it is 32MB on 32bit machines, and 128MB on 64bit machines.
// Feel free to change it.
var TooBig = 1 << (25 + ((^uint(0) >> 32) & 2))
