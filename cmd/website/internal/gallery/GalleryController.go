package gallery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/photogallery/pkg/dom"
	"github.com/adampresley/photogallery/pkg/page"
	"github.com/google/uuid"
)

const (
	IndexShell = "pages/index.html"
	AlbumShell = "pages/album.html"
)

type GalleryHandlers interface {
	IndexPage(w http.ResponseWriter, r *http.Request)
	AlbumPage(w http.ResponseWriter, r *http.Request)
	SessionPage(w http.ResponseWriter, r *http.Request)
	SessionEvent(w http.ResponseWriter, r *http.Request)
}

type GalleryControllerConfig struct {
	Bootstrapper page.Bootstrapper
	PagesFS      fs.FS
	SessionStore *page.SessionStore
	ShutdownCtx  context.Context
}

type GalleryController struct {
	bootstrapper page.Bootstrapper
	pagesFS      fs.FS
	sessionStore *page.SessionStore
	shutdownCtx  context.Context
}

func NewGalleryController(config GalleryControllerConfig) GalleryController {
	shutdownCtx := config.ShutdownCtx

	if shutdownCtx == nil {
		shutdownCtx = context.Background()
	}

	return GalleryController{
		bootstrapper: config.Bootstrapper,
		pagesFS:      config.PagesFS,
		sessionStore: config.SessionStore,
		shutdownCtx:  shutdownCtx,
	}
}

/*
GET /
GET /index.html
*/
func (c GalleryController) IndexPage(w http.ResponseWriter, r *http.Request) {
	c.startPage(w, r, IndexShell)
}

/*
GET /album.html
*/
func (c GalleryController) AlbumPage(w http.ResponseWriter, r *http.Request) {
	c.startPage(w, r, AlbumShell)
}

/*
GET /session/{id}
*/
func (c GalleryController) SessionPage(w http.ResponseWriter, r *http.Request) {
	session, ok := page.SessionFromContext(r.Context())

	if !ok {
		httphelpers.WriteText(w, http.StatusNotFound, "page session not found")
		return
	}

	c.writeSession(w, r, session)
}

/*
POST /session/{id}/events
*/
func (c GalleryController) SessionEvent(w http.ResponseWriter, r *http.Request) {
	var (
		err error
	)

	session, ok := page.SessionFromContext(r.Context())

	if !ok {
		httphelpers.WriteText(w, http.StatusNotFound, "page session not found")
		return
	}

	key := httphelpers.GetFromRequest[string](r, "key")
	target := httphelpers.GetFromRequest[string](r, "target")

	switch {
	case key != "":
		err = session.KeyDown(r.Context(), key)

	case target != "":
		err = session.Click(r.Context(), target)

	default:
		httphelpers.WriteText(w, http.StatusBadRequest, "event requires a target or key")
		return
	}

	if err != nil {
		c.writeSessionError(w, session, err)
		return
	}

	c.writeSession(w, r, session)
}

/*
startPage parses a fresh copy of the shell, runs the bootstrapper on a new
page session and writes the resulting document.
*/
func (c GalleryController) startPage(w http.ResponseWriter, r *http.Request, shell string) {
	var (
		err error
		doc *dom.Document
	)

	if doc, err = c.parseShell(shell); err != nil {
		slog.Error("error preparing page shell", "shell", shell, "error", err)
		httphelpers.TextInternalServerError(w, "Page not available")
		return
	}

	session := page.NewSession(c.shutdownCtx, uuid.NewString(), page.NewPage(doc))
	query := r.URL.Query()

	err = session.Do(r.Context(), func(p *page.Page) {
		c.bootstrapper.Run(r.Context(), p, query, session)
		page.WireInteractions(p, session.ID())
	})

	if err != nil {
		session.Close()
		slog.Error("error bootstrapping page", "shell", shell, "error", err)
		httphelpers.TextInternalServerError(w, "Page not available")
		return
	}

	c.sessionStore.Add(session)
	slog.Debug("page session started", "id", session.ID(), "shell", shell)

	c.writeSession(w, r, session)
}

func (c GalleryController) parseShell(shell string) (*dom.Document, error) {
	f, err := c.pagesFS.Open(shell)

	if err != nil {
		return nil, fmt.Errorf("error opening shell: %w", err)
	}

	defer f.Close()

	doc, err := dom.Parse(f)

	if err != nil {
		return nil, fmt.Errorf("error parsing shell: %w", err)
	}

	return doc, nil
}

func (c GalleryController) writeSession(w http.ResponseWriter, r *http.Request, session *page.Session) {
	body, err := session.Render(r.Context())

	if err != nil {
		c.writeSessionError(w, session, err)
		return
	}

	httphelpers.WriteHtml(w, http.StatusOK, string(body))
}

func (c GalleryController) writeSessionError(w http.ResponseWriter, session *page.Session, err error) {
	if errors.Is(err, page.ErrSessionClosed) {
		c.sessionStore.Remove(session.ID())
		httphelpers.WriteText(w, http.StatusNotFound, "page session not found")
		return
	}

	slog.Error("error handling page session", "id", session.ID(), "error", err)
	httphelpers.TextInternalServerError(w, "Page session failed")
}
