package view

// Site is the static metadata every page shares.
type Site struct {
	Title       string
	Heading     string
	Intro       string
	Footer      string
	Stylesheets []string
	Links       []SocialLink
}

// Page is a view wrapped in the site shell: header, content and footer.
type Page struct {
	Site    Site
	Title   string
	Content any
}

// DocumentTitle is the text for the <title> element.
func (p Page) DocumentTitle() string {
	if p.Title == "" {
		return p.Site.Title
	}
	if p.Site.Title == "" {
		return p.Title
	}
	return p.Title + " · " + p.Site.Title
}

// Home is the content of the listing page.
type Home struct {
	Heading string
	Intro   string
	Cards   []ListingCard
}

// NotFound is the content of the 404 page.
type NotFound struct {
	Slug string
}

// Shell wraps content in the shared header and footer.
type Shell struct {
	site Site
}

// NewShell returns a Shell for site.
func NewShell(site Site) Shell {
	return Shell{site: site}
}

// Site returns the shell's site metadata.
func (s Shell) Site() Site {
	return s.site
}

// Wrap places content inside the shell.
func (s Shell) Wrap(title string, content any) Page {
	return Page{Site: s.site, Title: title, Content: content}
}

// Failure is the content of an error page.
type Failure struct {
	Message string
}
