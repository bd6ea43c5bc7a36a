// Package manifest parses the JSON manifest Packer writes at the end of an
// image build. The manifest names each build, its artifact identifier, the
// files it produced and a free-form metadata map; the packaging pipeline
// consumes the first build only.
package manifest
