package web

import (
	"bytes"
	"embed"
	"io"
	"net/http"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templateFS embed.FS

// embedLoader serves pongo2 templates from the embedded filesystem.
type embedLoader struct{}

func (embedLoader) Abs(base, name string) string { return name }

func (embedLoader) Get(path string) (io.Reader, error) {
	b, err := templateFS.ReadFile("templates/" + path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

var registerFilters sync.Once

// newTemplateSet builds the pongo2 set with the ugc filter installed. The
// filter lets trusted operators keep light formatting in free-text fields
// while stripping anything executable.
func newTemplateSet() *pongo2.TemplateSet {
	registerFilters.Do(func() {
		policy := bluemonday.UGCPolicy()
		pongo2.RegisterFilter("ugc", func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsSafeValue(policy.Sanitize(in.String())), nil
		})
	})
	return pongo2.NewSet("web", embedLoader{})
}

type renderer struct {
	set *pongo2.TemplateSet
}

func newRenderer() *renderer {
	return &renderer{set: newTemplateSet()}
}

func (rd *renderer) render(w http.ResponseWriter, status int, name string, ctx pongo2.Context) {
	tpl, err := rd.set.FromCache(name)
	if err != nil {
		logger.Error("template load failed", "template", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tpl.ExecuteWriter(ctx, w); err != nil {
		logger.Error("template render failed", "template", name, "err", err)
	}
}
