package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/smokeytempo/timelinegen/internal/domain"
	"github.com/smokeytempo/timelinegen/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server provides the HTTP handlers of the web UI.
type Server struct {
	timeline *usecase.Timeline
	page     *Page
	canvas   *Canvas
	logger   *log.Logger
}

// NewServer creates a new web server around a timeline rendering into page and canvas.
func NewServer(timeline *usecase.Timeline, page *Page, canvas *Canvas, logger *log.Logger) *Server {
	return &Server{
		timeline: timeline,
		page:     page,
		canvas:   canvas,
		logger:   logger,
	}
}

// Router returns an http.Handler for the UI and API routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("POST /generate", s.generate)
	mux.HandleFunc("POST /filter", s.filter)
	mux.HandleFunc("POST /theme", s.toggleTheme)

	mux.HandleFunc("GET /api/v1/state", s.state)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	return mux
}

type indexData struct {
	Username string
	View     PageView
	Chart    *domain.BarChart
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Username: s.timeline.State().Username,
		View:     s.page.Snapshot(),
		Chart:    s.canvas.Chart(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Printf("failed to render page: %v", err)
	}
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	// The warning is already on the page; the error only matters for the log.
	if err := s.timeline.Generate(r.Context(), r.FormValue("username")); err != nil {
		s.logger.Printf("generate: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) filter(w http.ResponseWriter, r *http.Request) {
	s.timeline.SelectLanguage(r.FormValue("language"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) toggleTheme(w http.ResponseWriter, r *http.Request) {
	s.timeline.ToggleTheme()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type stateResponse struct {
	Username string           `json:"username"`
	View     PageView         `json:"view"`
	Chart    *domain.BarChart `json:"chart"`
	Summary  usecase.Summary  `json:"summary"`
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	summary, err := s.timeline.Summary()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{
		Username: s.timeline.State().Username,
		View:     s.page.Snapshot(),
		Chart:    s.canvas.Chart(),
		Summary:  summary,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
