package ui

import (
	"bytes"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/internal/assets"
)

const LogoAlt = "ZKPA Logo"

var templates *template.Template

func init() {
	tmpl, err := Templates(nil)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

type LogoTemplateData struct {
	URL string
	Alt string
}

// HeaderTemplateData contains the data needed to render the site header
type HeaderTemplateData struct {
	Logo        LogoTemplateData
	NavbarItems []NavbarItem
}

func NewHeaderTemplateData() HeaderTemplateData {
	return HeaderTemplateData{
		Logo: LogoTemplateData{
			URL: assets.URL(assets.Logo),
			Alt: LogoAlt,
		},
		NavbarItems: HeaderNavbarItems(),
	}
}

// RenderHeader writes the site header: the logo linking home followed by the
// navigation menu.
func RenderHeader(w io.Writer) error {
	if err := templates.ExecuteTemplate(w, "header", NewHeaderTemplateData()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Header returns the rendered site header.
func Header() (template.HTML, error) {
	var buff bytes.Buffer

	if err := RenderHeader(&buff); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}
