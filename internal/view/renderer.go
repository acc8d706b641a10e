package view

import (
	"errors"

	"github.com/codeconfidence/internal/db"
	"github.com/codeconfidence/internal/service"
)

// ErrNotFound is returned for slugs that match no document.
var ErrNotFound = errors.New("page not found")

// Renderer fetches from a DocumentStore and renders with the pure builders.
type Renderer struct {
	store      service.DocumentStore
	shell      Shell
	dateFormat string
}

// NewRenderer returns a Renderer reading from store.
func NewRenderer(store service.DocumentStore, shell Shell, dateFormat string) *Renderer {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	return &Renderer{store: store, shell: shell, dateFormat: dateFormat}
}

// Cards returns the listing cards for every document.
func (r *Renderer) Cards() ([]ListingCard, error) {
	docs, err := r.store.ListAll()
	if err != nil {
		return nil, err
	}
	return BuildListing(docs, r.dateFormat), nil
}

// Listing renders the home page.
func (r *Renderer) Listing() (Page, error) {
	cards, err := r.Cards()
	if err != nil {
		return Page{}, err
	}
	site := r.shell.Site()
	return r.shell.Wrap("", Home{Heading: site.Heading, Intro: site.Intro, Cards: cards}), nil
}

// DetailPage returns the detail view for slug without the shell.
func (r *Renderer) DetailPage(slug string) (DetailPage, error) {
	doc, err := r.lookup(slug)
	if err != nil {
		return DetailPage{}, err
	}
	return BuildDetail(*doc, r.dateFormat), nil
}

// Detail renders the page for slug. Unknown slugs yield ErrNotFound.
func (r *Renderer) Detail(slug string) (Page, error) {
	detail, err := r.DetailPage(slug)
	if err != nil {
		return Page{}, err
	}
	return r.shell.Wrap(detail.Title, detail), nil
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(slug string) Page {
	return r.shell.Wrap("Not found", NotFound{Slug: slug})
}

func (r *Renderer) lookup(slug string) (*db.Document, error) {
	if db.CanonicalSlug(slug) == "" {
		return nil, ErrNotFound
	}
	doc, err := r.store.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Failure renders the error page with message.
func (r *Renderer) Failure(message string) Page {
	return r.shell.Wrap("Error", Failure{Message: message})
}

// Site returns the site metadata pages are wrapped with.
func (r *Renderer) Site() Site {
	return r.shell.Site()
}
