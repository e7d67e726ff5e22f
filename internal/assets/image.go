// internal/assets/image.go
package assets

import "image"

// Image — непрозрачный дескриптор картинки. Ядру нужен только размер,
// рисованием занимаются адаптеры (ebiten, терминал).
type Image interface {
	Bounds() image.Rectangle
}

// Loader загружает картинку по относительному пути.
type Loader interface {
	Load(path string) (Image, error)
}

// LoaderFunc позволяет использовать функцию как Loader.
type LoaderFunc func(path string) (Image, error)

func (f LoaderFunc) Load(path string) (Image, error) { return f(path) }
