// Package builder orchestrates the OVA packaging pipeline: load the Packer
// manifest, stream-optimize the disk, render the OVF descriptor, write the
// checksum manifest, assemble the tar archive and its checksum sidecar.
//
// The pipeline is strictly sequential and runs once per invocation. Any step
// failure aborts the run; a later invocation re-runs everything and
// overwrites prior outputs.
package builder
