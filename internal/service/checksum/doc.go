// Package checksum computes streaming SHA-256 digests of artifact files and
// writes the OVA checksum manifest (`SHA256(file)= hexdigest` per line).
package checksum
