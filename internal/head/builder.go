// internal/head/builder.go
//
// The Builder collects everything that should appear inside a page’s
// <head> element.  It is scoped to a single request (or render call).
// Handlers push tags into the builder from the loaded config—title from
// identity, keywords from marketing.seo_keywords—then the template’s base
// layout decides where to emit each slice.
//
// Features
// --------
//   - SetTitle     – single <title> tag (last call wins).
//   - Meta, Link   – arbitrary tags with deduplication.
//   - Keywords     – convenience for the SEO keyword list.
//   - Render helpers – concat methods that return template.HTML.
package head

import (
	"html/template"
	"strings"
	"sync"
)

// Builder methods all take the mutex, so a handler can hand it to a
// goroutine (for example, a parallel section render) without coordination.
type Builder struct {
	mu sync.Mutex

	title string

	metas []string
	links []string

	// seen tracks keys for deduplication.
	seen map[string]struct{}
}

func New() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// SetTitle overrides the page <title>.  The last caller wins.
func (b *Builder) SetTitle(t string) {
	b.mu.Lock()
	b.title = t
	b.mu.Unlock()
}

// Title returns a fully formed <title> tag or an empty string.
func (b *Builder) Title() template.HTML {
	b.mu.Lock()
	title := b.title
	b.mu.Unlock()

	if title == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(title)
	return template.HTML("<title>" + escaped + "</title>")
}

// Keywords adds a <meta name="keywords"> tag when the list is non-empty.
func (b *Builder) Keywords(words []string) {
	if len(words) == 0 {
		return
	}
	escaped := template.HTMLEscapeString(strings.Join(words, ", "))
	b.Meta(`<meta name="keywords" content="` + escaped + `">`)
}

func (b *Builder) Meta(tag string) { b.add("meta:"+tag, &b.metas, tag) }
func (b *Builder) Link(tag string) { b.add("link:"+tag, &b.links, tag) }

func (b *Builder) add(key string, tgt *[]string, tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	*tgt = append(*tgt, tag)
}

//
// Rendering helpers called from templates
//

func (b *Builder) Metas() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	return concat(b.metas)
}

func (b *Builder) Links() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	return concat(b.links)
}

// concat joins pre-escaped tags without a separator.
func concat(sl []string) template.HTML {
	return template.HTML(strings.Join(sl, ""))
}
