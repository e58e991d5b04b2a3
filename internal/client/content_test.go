package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morinolab/site/internal/assets"
	"morinolab/site/internal/config"
	"morinolab/site/internal/domain"
)

func newHTTPTestClient(t *testing.T, files map[string]string) ContentClient {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	resolver := assets.NewResolver("/morinolab_hp", "generated_contents", "generated_contents")
	source := NewHTTPSource(config.SiteConfig{BaseURL: ts.URL, Timeout: 5, MaxRetries: 0}, resolver)
	t.Cleanup(func() { _ = source.Close() })

	return NewContentClient(source, resolver)
}

func TestContentClient_Load(t *testing.T) {
	c := newHTTPTestClient(t, map[string]string{
		"/morinolab_hp/generated_contents/news/news.csv": "id,nameJa,nameEn\n1,ニュース,News\n",
	})

	records, err := c.Load(context.Background(), domain.ContentTypeNews)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "News", ResolveLocalizedField(records[0], "name", domain.LocaleEnglish))
}

func TestContentClient_LoadIsRepeatable(t *testing.T) {
	c := newHTTPTestClient(t, map[string]string{
		"/morinolab_hp/generated_contents/award/award.csv": "id,nameJa,nameEn,date\n1,最優秀賞,Best Paper,2024-03-01\n2,奨励賞,,2023-09-10\n",
	})

	first, err := c.Load(context.Background(), domain.ContentTypeAward)
	require.NoError(t, err)
	second, err := c.Load(context.Background(), domain.ContentTypeAward)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestContentClient_MissingIndexIsFetchError(t *testing.T) {
	c := newHTTPTestClient(t, map[string]string{})

	_, err := c.Load(context.Background(), domain.ContentTypeLecture)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.True(t, IsNotFound(err))
}

func TestContentClient_UnknownContentType(t *testing.T) {
	c := newHTTPTestClient(t, map[string]string{})

	_, err := c.Load(context.Background(), domain.ContentType("blog"))
	assert.ErrorIs(t, err, ErrUnknownContentType)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, "generated_contents/blog/blog.csv", fetchErr.URL)
	assert.True(t, IsNotFound(err))

	_, err = c.LoadArticle(context.Background(), domain.ContentType("blog"), "1")
	require.True(t, errors.As(err, &fetchErr))
	assert.ErrorIs(t, err, ErrUnknownContentType)
}

func TestContentClient_LoadCareer(t *testing.T) {
	c := newHTTPTestClient(t, map[string]string{
		"/morinolab_hp/generated_contents/career/career.csv": "id,nameJa,nameEn,thumbnail\n1,研究職,Researcher,lab.png\n",
	})

	records, err := c.Load(context.Background(), domain.ContentTypeCareer)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "研究職", ResolveLocalizedField(records[0], "name", domain.LocaleJapanese))
}

func TestContentClient_LoadArticleFallsBackToLegacy(t *testing.T) {
	c := newHTTPTestClient(t, map[string]string{
		"/morinolab_hp/generated_contents/theme/4/article.html": "<html><body><h2>旧記事</h2></body></html>",
	})

	article, err := c.LoadArticle(context.Background(), domain.ContentTypeTheme, "4")
	require.NoError(t, err)
	assert.Equal(t, domain.ArticleFormatLegacy, article.Format)
	assert.Contains(t, article.HTML, "旧記事")
}

func TestContentClient_LoadArticleMissing(t *testing.T) {
	c := newHTTPTestClient(t, map[string]string{})

	_, err := c.LoadArticle(context.Background(), domain.ContentTypeTheme, "4")
	assert.True(t, IsNotFound(err))
}

func TestContentClient_DirSourceDetail(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/site/public/generated_contents/member/member.csv",
		[]byte("id,nameJa,nameEn,descJa,descEn,memberTypeId,thumbnail,tagIds,gradYear\n5,森野,Morino,教授,,1,face.jpg,1|2,\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/site/public/generated_contents/member/5/article.md",
		[]byte("## Profile\n\n![me](face.jpg)\n"), 0o644))

	resolver := assets.NewResolver("", "generated_contents", "generated_contents")
	c := NewContentClient(NewDirSource(fsys, "/site/public"), resolver)

	record, article, err := c.LoadDetail(context.Background(), domain.ContentTypeMember, "5")
	require.NoError(t, err)
	assert.Equal(t, "Morino", ResolveLocalizedField(*record, "name", domain.LocaleEnglish))
	assert.Equal(t, "教授", ResolveLocalizedField(*record, "desc", domain.LocaleEnglish))
	assert.Contains(t, article.HTML, `src="/generated_contents/member/5/face.jpg"`)

	_, _, err = c.LoadDetail(context.Background(), domain.ContentTypeMember, "99")
	assert.ErrorIs(t, err, ErrNotFound)

	members, err := NewCatalog(c).Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "/generated_contents/member/face.jpg", members[0].Thumbnail)
	assert.Equal(t, []int{1, 2}, members[0].TagIDs)
	assert.Equal(t, 0, members[0].GradYear)
}

func TestCatalog_Conversions(t *testing.T) {
	res := assets.NewResolver("", "generated_contents", "generated_contents")

	lecture := ToLecture(domain.Record{ID: "2", Fields: map[string]domain.LocalizedText{}, Attributes: map[string]string{}}, res)
	assert.Equal(t, domain.DefaultLectureType, lecture.Type)
	assert.Equal(t, "", lecture.Thumbnail)

	award := ToAward(domain.Record{ID: "9", Attributes: map[string]string{
		"memberIds": "3;4",
		"date":      "2024/02/29",
		"thumbnail": "https://cdn.example.com/a.png",
	}}, res)
	assert.Equal(t, 9, award.ID)
	assert.Equal(t, []int{3, 4}, award.MemberIDs)
	assert.Equal(t, 2024, award.Date.Year())
	assert.Equal(t, "https://cdn.example.com/a.png", award.Thumbnail)
}
