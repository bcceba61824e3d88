package webui

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// describe tolerates description arrays shorter than the history; the two
// are aligned by convention only.
var funcs = template.FuncMap{
	"describe": describeMove,
}

var (
	homeTmpl      = parsePage("home.html")
	nameEntryTmpl = parsePage("name_entry.html")
	playTmpl      = parsePage("play.html")
	replayTmpl    = parsePage("replay.html")
)

func parsePage(page string) *template.Template {
	return template.Must(template.New("base.html").Funcs(funcs).
		ParseFS(templateFS, "templates/base.html", "templates/"+page))
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[web] render %s: %v", tmpl.Name(), err)
	}
}
