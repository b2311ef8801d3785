package site

import (
	"io"

	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/internal/ui"
)

// Page is one of the documents the header navigation points to.
type Page struct {
	// Name of the view template rendering the page content
	Name  string
	Path  string
	Title string
}

var (
	PageHome   = Page{Name: "home", Path: ui.NavbarItemHome.URL, Title: "Home"}
	PageCamera = Page{Name: "camera", Path: ui.NavbarItemCamera.URL, Title: "Camera"}
	PageDoc    = Page{Name: "doc", Path: ui.NavbarItemDoc.URL, Title: "Doc"}
)

func Pages() []Page {
	return []Page{PageHome, PageCamera, PageDoc}
}

type Renderer struct {
	siteTitle string
}

func NewRenderer(siteTitle string) *Renderer {
	return &Renderer{siteTitle: siteTitle}
}

func (r *Renderer) pageTitle(page Page) string {
	if r.siteTitle == "" {
		return page.Title
	}

	return page.Title + " - " + r.siteTitle
}

// Render writes the complete HTML document of the given page.
func (r *Renderer) Render(w io.Writer, page Page) error {
	data := PageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: r.pageTitle(page),
		},
		HeaderTemplateData: ui.NewHeaderTemplateData(),
		Page:               page,
	}

	if err := templates.ExecuteTemplate(w, page.Name, data); err != nil {
		return errors.Wrapf(err, "could not render page '%s'", page.Name)
	}

	return nil
}
