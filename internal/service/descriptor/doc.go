// Package descriptor renders the OVF descriptor for the appliance by
// substituting build metadata and disk sizes into a fixed envelope template.
// Rendering is pure string substitution; a missing placeholder value is an
// error and nothing is written.
package descriptor
