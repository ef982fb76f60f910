// Package resources embeds the translation catalogs shipped with the console.
package resources

import (
	"embed"
	"io/fs"
)

//go:embed i18n/*.ts
var files embed.FS

// Catalogs returns the embedded .ts catalogs rooted at their directory.
func Catalogs() fs.FS {
	sub, err := fs.Sub(files, "i18n")
	if err != nil {
		panic("resources: " + err.Error())
	}
	return sub
}
