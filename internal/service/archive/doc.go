// Package archive assembles the final OVA: an uncompressed tar stream of the
// descriptor, checksum manifest and stream-optimized disk, plus a sidecar
// file carrying the archive's own SHA-256.
package archive
