package view

import "io"

//go:generate mockgen -destination=mocks/renderer_mock.go -package=mocks . Renderer

// Renderer Интерфейс отрисовки страниц.
type Renderer interface {
	RenderLogin(w io.Writer, v LoginView) error
	RenderData(w io.Writer, v DataView) error
}
