// Package export writes the site pages and their assets to a directory so they
// can be hosted by any static file server.
package export

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/internal/assets"
	"github.com/zkpa/zkpa/internal/site"
	"github.com/zkpa/zkpa/pkg/log"
)

type Report struct {
	Files int
	Bytes int64
}

func (r *Report) add(n int64) {
	r.Files++
	r.Bytes += n
}

// Run renders every page into dir and copies the embedded assets next to
// them. Existing files are overwritten.
func Run(ctx context.Context, dir string, renderer *site.Renderer) (*Report, error) {
	ctx = log.WithAttrs(ctx, slog.String("dir", dir))

	report := &Report{}

	for _, page := range site.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		filename := filepath.Join(dir, filepath.FromSlash(page.Path), "index.html")

		n, err := writeFile(filename, func(w io.Writer) error {
			return renderer.Render(w, page)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "could not export page '%s'", page.Name)
		}

		slog.DebugContext(ctx, "page exported", slog.String("page", page.Name), slog.String("file", filename))

		report.add(n)
	}

	assetsDir := filepath.Join(dir, filepath.FromSlash(assets.Prefix))
	assetsFs := assets.FS()

	err := fs.WalkDir(assetsFs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		if d.IsDir() {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		filename := filepath.Join(assetsDir, filepath.FromSlash(path))

		n, err := writeFile(filename, func(w io.Writer) error {
			src, err := assetsFs.Open(path)
			if err != nil {
				return errors.WithStack(err)
			}

			defer src.Close()

			if _, err := io.Copy(w, src); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "could not export asset '%s'", path)
		}

		report.add(n)

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "site exported", slog.Int("files", report.Files), slog.String("size", humanize.Bytes(uint64(report.Bytes))))

	return report, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func writeFile(filename string, write func(w io.Writer) error) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return 0, errors.WithStack(err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	cw := &countingWriter{w: file}

	if err := write(cw); err != nil {
		file.Close()
		return 0, errors.WithStack(err)
	}

	if err := file.Close(); err != nil {
		return 0, errors.WithStack(err)
	}

	return cw.n, nil
}
