// Package nav is the CLI counterpart of a front-end router: named locations rendered to a writer.
package nav

import (
	"fmt"
	"io"
	"sync"
)

// Page рисует экран в w.
type Page func(w io.Writer) error

// Router хранит страницы по пути и текущее местоположение.
type Router struct {
	mu      sync.Mutex
	out     io.Writer
	pages   map[string]Page
	current string
}

// NewRouter создаёт роутер, который рисует страницы в out.
func NewRouter(out io.Writer) *Router {
	return &Router{out: out, pages: map[string]Page{}}
}

// Handle регистрирует страницу для path.
func (r *Router) Handle(path string, p Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[path] = p
}

// GoTo renders the page registered for path and makes it current.
func (r *Router) GoTo(path string) error {
	r.mu.Lock()
	p, ok := r.pages[path]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("no page for %q", path)
	}
	if err := p(r.out); err != nil {
		return fmt.Errorf("render %q: %w", path, err)
	}
	r.mu.Lock()
	r.current = path
	r.mu.Unlock()
	return nil
}

// Current возвращает путь последней открытой страницы.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
