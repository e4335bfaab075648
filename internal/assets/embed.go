// Package assets holds the files every generated site starts from.
//
// Bundle is rooted at "bundle". Most files are copied into a new project
// unchanged; _head.html, package.json and bower.json carry <%= site_name %>
// placeholders and are rendered instead. Dot files are stored with a leading
// underscore (_bowerrc, _gitignore) so they survive packaging and are renamed
// on the way out.
package assets

import (
	"embed"
	"io/fs"
)

// Root is the directory inside Bundle that holds the assets.
const Root = "bundle"

// Bundle is the embedded asset bundle.
//
//go:embed all:bundle
var Bundle embed.FS

// FS returns Bundle rooted at Root, so paths read "app/styles" rather than
// "bundle/app/styles".
func FS() fs.FS {
	sub, err := fs.Sub(Bundle, Root)
	if err != nil {
		panic(err)
	}
	return sub
}
