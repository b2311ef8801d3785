// Package assets embeds the static files referenced by the site templates
// (logo) and serves them over HTTP.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
	"path"

	"github.com/pkg/errors"
)

const Prefix = "/assets/"

const Logo = "logo.png"

//go:embed static/*
var staticFs embed.FS

// FS returns the embedded assets rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(staticFs, "static")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return sub
}

// URL returns the public path of the named asset.
func URL(name string) string {
	return path.Join(Prefix, name)
}

// NewHandler serves the embedded assets under the given prefix.
func NewHandler(prefix string) http.Handler {
	return http.StripPrefix(prefix, http.FileServerFS(FS()))
}
