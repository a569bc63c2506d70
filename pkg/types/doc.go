// Package types defines the data shared across projmarks packages: the
// mark store layout, resolved targets, the filesystem surface and
// confirmation requests.
package types
