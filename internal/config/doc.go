// Package config defines packaging settings used by the pipeline and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the disk converter executable, its target format code
// and the filenames consumed from the Packer build directory. Every field has
// a default, so running without a settings file is the common case.
package config
