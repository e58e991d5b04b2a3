package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morinolab/site/internal/assets"
	"morinolab/site/internal/domain"
)

func newTestArticleParser() *articleParser {
	return newArticleParser(assets.NewResolver("/hp", "generated_contents", "generated_contents"))
}

func TestArticleParser_Markdown(t *testing.T) {
	md := "# 研究成果\n\n![figure](img/fig1.png)\n\n[paper](paper.pdf) and [site](https://example.com)\n\n<script>alert(1)</script>\n"

	article, err := newTestArticleParser().ParseMarkdown(domain.ContentTypeNews, "7", "article.md", md)
	require.NoError(t, err)

	assert.Equal(t, domain.ArticleFormatMarkdown, article.Format)
	assert.Equal(t, "/hp/generated_contents/news/7/", article.BaseDir)
	assert.Contains(t, article.HTML, "研究成果</h1>")
	assert.Contains(t, article.HTML, `src="/hp/generated_contents/news/7/img/fig1.png"`)
	assert.Contains(t, article.HTML, `href="/hp/generated_contents/news/7/paper.pdf"`)
	assert.Contains(t, article.HTML, `href="https://example.com"`)
	assert.NotContains(t, article.HTML, "<script>")
}

func TestArticleParser_LegacyHTMLKeepsBodyOnly(t *testing.T) {
	page := `<!DOCTYPE html><html><head><title>old</title><style>p{}</style></head>
<body><p>本文</p><img src="photo.jpg"></body></html>`

	article, err := newTestArticleParser().ParseLegacyHTML(domain.ContentTypeAward, "3", "article.html", page)
	require.NoError(t, err)

	assert.Equal(t, domain.ArticleFormatLegacy, article.Format)
	assert.Contains(t, article.HTML, "<p>本文</p>")
	assert.Contains(t, article.HTML, `src="/hp/generated_contents/award/3/photo.jpg"`)
	assert.NotContains(t, article.HTML, "<title>")
}
