package site

import (
	"embed"
	"html/template"

	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/internal/ui"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// PageTemplateData contains the data needed to render a full site page
type PageTemplateData struct {
	ui.HeadTemplateData
	ui.HeaderTemplateData
	Page Page
}
