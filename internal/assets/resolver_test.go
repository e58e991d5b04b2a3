package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"morinolab/site/internal/domain"
)

func TestResolver_ResolveAssetPath(t *testing.T) {
	r := NewResolver("/morinolab_hp/", "generated_contents", "generated_contents")

	assert.Equal(t, "/morinolab_hp/generated_contents/news/thumb.png", r.ResolveAssetPath("news/thumb.png"))
	assert.Equal(t, "https://example.com/a.png", r.ResolveAssetPath("https://example.com/a.png"))
	assert.Equal(t, "/already/absolute.png", r.ResolveAssetPath("/already/absolute.png"))
	assert.Equal(t, "./local.png", r.ResolveAssetPath("./local.png"))
	assert.Equal(t, "", r.ResolveAssetPath("   "))
}

func TestResolver_NoBasePath(t *testing.T) {
	r := NewResolver("", "generated_contents", "generated_contents")

	assert.Equal(t, "/generated_contents/member/a.jpg", r.Thumbnail(domain.ContentTypeMember, "a.jpg"))
	assert.Equal(t, "/generated_contents/news/3/", r.ArticleDir(domain.ContentTypeNews, "3"))
	assert.Equal(t, "generated_contents/news/news.csv", r.IndexPath(domain.ContentTypeNews))
	assert.Equal(t, "generated_contents/news/3/article.md", r.ArticlePath(domain.ContentTypeNews, "3", "article.md"))
}

func TestResolver_StaticPath(t *testing.T) {
	r := NewResolver("morinolab_hp", "generated_contents", "generated_contents")

	assert.Equal(t, "/morinolab_hp/x.csv", r.StaticPath("x.csv"))
	assert.Equal(t, "/morinolab_hp/x.csv", r.StaticPath("/morinolab_hp/x.csv"))
	assert.Equal(t, "/morinolab_hp/morinolab_hpx", r.StaticPath("/morinolab_hpx"))
}

func TestResolver_ResolveArticleLink(t *testing.T) {
	r := NewResolver("/hp", "generated_contents", "generated_contents")

	assert.Equal(t, "/hp/generated_contents/news/1/img/a.png", r.ResolveArticleLink(domain.ContentTypeNews, "1", "img/a.png"))
	assert.Equal(t, "/hp/generated_contents/news/b.png", r.ResolveArticleLink(domain.ContentTypeNews, "1", "../b.png"))
	assert.Equal(t, "#top", r.ResolveArticleLink(domain.ContentTypeNews, "1", "#top"))
	assert.Equal(t, "mailto:lab@example.com", r.ResolveArticleLink(domain.ContentTypeNews, "1", "mailto:lab@example.com"))
	assert.Equal(t, "https://example.com", r.ResolveArticleLink(domain.ContentTypeNews, "1", "https://example.com"))
}
