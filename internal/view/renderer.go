package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates static
var contentFS embed.FS

const (
	loginTemplate = "login.tmpl.html"
	dataTemplate  = "data.tmpl.html"
)

// TemplateRenderer Отрисовка страниц из встроенных html/template шаблонов.
type TemplateRenderer struct {
	login *template.Template
	data  *template.Template
}

// NewTemplateRenderer Разбирает шаблоны страниц вместе с общими частями.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	login, err := parsePage(loginTemplate)
	if err != nil {
		return nil, err
	}

	data, err := parsePage(dataTemplate)
	if err != nil {
		return nil, err
	}

	return &TemplateRenderer{login: login, data: data}, nil
}

func parsePage(name string) (*template.Template, error) {
	templateFS, err := fs.Sub(contentFS, "templates")
	if err != nil {
		return nil, err
	}

	t, err := template.New(name).ParseFS(templateFS, "common/*.tmpl.html", name)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора шаблона %s: %w", name, err)
	}

	return t, nil
}

// RenderLogin Отрисовка страницы входа.
func (r *TemplateRenderer) RenderLogin(w io.Writer, v LoginView) error {
	return r.login.Execute(w, v)
}

// RenderData Отрисовка страницы данных.
func (r *TemplateRenderer) RenderData(w io.Writer, v DataView) error {
	return r.data.Execute(w, v)
}

// StaticHandler http.Handler для встроенной статики (скрипт страницы и стили).
func StaticHandler() http.Handler {
	staticFS, _ := fs.Sub(contentFS, "static")

	return http.FileServer(http.FS(staticFS))
}
