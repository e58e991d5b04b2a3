package domain

type ArticleFormat string

const (
	ArticleFormatMarkdown ArticleFormat = "markdown"
	ArticleFormatLegacy   ArticleFormat = "html"
)

// Article is the rendered narrative fragment of a detail page
type Article struct {
	ContentType ContentType   `json:"content_type"`
	ID          string        `json:"id"`
	Format      ArticleFormat `json:"format"`
	HTML        string        `json:"html"`
	BaseDir     string        `json:"base_dir"` // asset directory relative links were resolved against
}
