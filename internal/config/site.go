package config

import "github.com/goccy/go-yaml"

type Site struct {
	Title InterpolatedString `yaml:"title"`
}

func NewDefaultSiteConfig() Site {
	return Site{
		Title: "${ZKPA_SITE_TITLE:-ZKPA}",
	}
}

func NewSiteConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":       []*yaml.Comment{yaml.HeadComment(" Site configuration")},
		".title": []*yaml.Comment{yaml.HeadComment(" Suffix appended to every page title")},
	}
}
