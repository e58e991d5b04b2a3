package assets

import (
	"path"
	"regexp"
	"strings"

	"morinolab/site/internal/domain"
)

var externalPath = regexp.MustCompile(`^(https?:)?/`)

// Resolver maps content-relative paths onto the deployed static tree. All
// methods are pure string transformations.
type Resolver struct {
	basePath    string // e.g. "/morinolab_hp", "" when served from the root
	indexRoot   string // e.g. "generated_contents"
	articleRoot string // usually the same as indexRoot
}

func NewResolver(basePath, indexRoot, articleRoot string) *Resolver {
	return &Resolver{
		basePath:    normalizeBasePath(basePath),
		indexRoot:   strings.Trim(indexRoot, "/"),
		articleRoot: strings.Trim(articleRoot, "/"),
	}
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (r *Resolver) BasePath() string {
	return r.basePath
}

// StaticPath prefixes an absolute site path with the base path unless it already carries it
func (r *Resolver) StaticPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if r.basePath != "" && (p == r.basePath || strings.HasPrefix(p, r.basePath+"/")) {
		return p
	}
	return r.basePath + p
}

// ResolveAssetPath maps a path relative to the content tree (e.g.
// "news/thumb.png") to its fully qualified location under the static root.
// URLs, absolute paths and "./" paths pass through unchanged; blank input
// yields "".
func (r *Resolver) ResolveAssetPath(relativePath string) string {
	p := strings.TrimSpace(relativePath)
	if p == "" {
		return ""
	}
	if externalPath.MatchString(p) || strings.HasPrefix(p, "./") {
		return p
	}
	return r.StaticPath(path.Join("/", r.indexRoot, p))
}

// Thumbnail resolves a bare thumbnail file name stored in a content index
func (r *Resolver) Thumbnail(contentType domain.ContentType, filename string) string {
	name := strings.TrimSpace(filename)
	if name == "" {
		return ""
	}
	if externalPath.MatchString(name) || strings.HasPrefix(name, "./") {
		return name
	}
	return r.ResolveAssetPath(contentType.String() + "/" + name)
}

// IndexPath is the source-relative location of a content type's index
func (r *Resolver) IndexPath(contentType domain.ContentType) string {
	return path.Join(r.indexRoot, contentType.IndexFile())
}

// ArticlePath is the source-relative location of an item's article file
func (r *Resolver) ArticlePath(contentType domain.ContentType, id, file string) string {
	return path.Join(r.articleRoot, contentType.String(), id, file)
}

// ArticleDir is the public directory relative links inside an article resolve against. Always ends in "/".
func (r *Resolver) ArticleDir(contentType domain.ContentType, id string) string {
	return r.StaticPath(path.Join("/", r.articleRoot, contentType.String(), id)) + "/"
}

// ResolveArticleLink rewrites a link found inside an article. Absolute,
// fragment-only and scheme-qualified links are returned unchanged.
func (r *Resolver) ResolveArticleLink(contentType domain.ContentType, id, link string) string {
	l := strings.TrimSpace(link)
	if l == "" || strings.HasPrefix(l, "#") || strings.HasPrefix(l, "/") || hasScheme(l) {
		return link
	}
	dir := r.ArticleDir(contentType, id)
	resolved := path.Join(dir, l)
	// path.Join drops a trailing slash that the link may have carried
	if strings.HasSuffix(l, "/") && !strings.HasSuffix(resolved, "/") {
		resolved += "/"
	}
	return resolved
}

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

func hasScheme(link string) bool {
	return schemePrefix.MatchString(link)
}
