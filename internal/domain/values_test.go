package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, ParseIDList("1|2, 3;4"))
	assert.Equal(t, []int{5}, ParseIDList(" x | 5 "))
	assert.Nil(t, ParseIDList(""))
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), ParseDate("2024-04-01"))
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), ParseDate("2024/04/01"))
	assert.True(t, ParseDate("someday").IsZero())
}

func TestSortByDateDesc(t *testing.T) {
	items := []NewsItem{
		{ID: 1, Date: ParseDate("2023-01-01")},
		{ID: 2, Date: ParseDate("2024-01-01")},
		{ID: 3, Date: ParseDate("2023-01-01")},
	}

	SortByDateDesc(items)

	ids := []int{items[0].ID, items[1].ID, items[2].ID}
	assert.Equal(t, []int{2, 1, 3}, ids)
}

func TestContentType_Valid(t *testing.T) {
	assert.True(t, ContentTypeNews.Valid())
	assert.False(t, ContentType("blog").Valid())
	assert.True(t, ContentTypeCareer.Valid())
	assert.Equal(t, "career/career.csv", ContentTypeCareer.IndexFile())
	assert.Equal(t, "news/news.csv", ContentTypeNews.IndexFile())
}
