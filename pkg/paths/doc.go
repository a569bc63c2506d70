// Package paths provides centralized path handling for projmarks.
//
// It covers three concerns:
//
//   - Application directories following the XDG Base Directory
//     specification (data, config, state).
//   - Path resolution: deciding whether a path is absolute, normalizing it
//     to a canonical form and detecting the enclosing project root from a
//     set of marker names (.git, .hg, ...).
//   - Relativization: converting absolute paths to the storage form
//     (relative to a project root) and resolving stored paths back.
//
// # Canonical form
//
// Canonical paths are absolute, cleaned, symlink-resolved when the target
// exists, and always use "/" as separator, on every platform. Stored paths
// follow the same separator convention.
//
// # Environment Variables
//
//   - PROJMARKS_DATA_DIR: Override data directory (default: $XDG_DATA_HOME/projmarks)
//   - PROJMARKS_CONFIG_DIR: Override config directory (default: $XDG_CONFIG_HOME/projmarks)
//
// # Usage
//
//	r := paths.NewResolver(filesystem.NewOS(), []string{".git", ".hg"})
//	root := r.DetectProject("/home/user/src/app/main.go") // /home/user/src/app
//	stored := paths.Relativize("/home/user/src/app/main.go", root) // main.go
//	abs, err := r.ResolveProjectPath(stored, root)
package paths
