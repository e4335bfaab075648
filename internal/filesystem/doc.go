// Package filesystem provides utilities for traversing file trees with
// smart defaults.
//
// # Overview
//
// The generator copies whole directories out of its embedded asset bundle.
// WalkFS visits every entry of an fs.FS subtree while skipping editor and
// OS droppings that should never end up in a scaffolded project:
//   - Directory ignores (node_modules, .git, ...)
//   - Pattern-based filtering (.DS_Store, *.swp, ...)
//
// # Usage
//
// Walk a subtree of an embedded bundle with default ignores:
//
//	err := filesystem.WalkFS(assets.Bundle, "bundle/app/styles", filesystem.WalkOptions{},
//	    func(path string, d fs.DirEntry) error {
//	        fmt.Println(path)
//	        return nil
//	    })
package filesystem
