// Package datastore persists the mark store to a single structured file.
//
// The file holds one document mapping project roots to objects mapping mark
// keys to stored paths:
//
//	{
//	  "/abs/path/to/project1": { "m": "src/main.go", "d": "tests" },
//	  "/abs/path/to/project2": { "m": "main.go" }
//	}
//
// The encoding follows the file extension: .json (default), .yaml/.yml or
// .toml. Every save rewrites the whole document; there is no locking against
// other writers and the last write wins.
package datastore
