package domain

import (
	"sort"
	"time"
)

type Tag struct {
	ID   int           `json:"id"`
	Name LocalizedText `json:"name"`
}

type MemberType struct {
	ID   int           `json:"id"`
	Name LocalizedText `json:"name"`
}

type Member struct {
	ID           int           `json:"id"`
	Name         LocalizedText `json:"name"`
	Description  LocalizedText `json:"description"`
	MemberTypeID int           `json:"member_type_id"`
	Thumbnail    string        `json:"thumbnail,omitempty"`
	TagIDs       []int         `json:"tag_ids,omitempty"`
	GradYear     int           `json:"grad_year,omitempty"` // 0 when unknown
}

type Publication struct {
	ID              int           `json:"id"`
	AuthorMemberIDs []int         `json:"author_member_ids,omitempty"`
	TagIDs          []int         `json:"tag_ids,omitempty"`
	Title           LocalizedText `json:"title"`
	PublicationName LocalizedText `json:"publication_name"`
	Thumbnail       string        `json:"thumbnail,omitempty"`
	PublishedDate   time.Time     `json:"published_date,omitempty"`
}

type Theme struct {
	ID              int           `json:"id"`
	Thumbnail       string        `json:"thumbnail,omitempty"`
	Name            LocalizedText `json:"name"`
	Description     LocalizedText `json:"description"`
	KeyAchievements string        `json:"key_achievements,omitempty"`
}

type NewsItem struct {
	ID        int           `json:"id"`
	Date      time.Time     `json:"date"`
	Name      LocalizedText `json:"name"`
	Thumbnail string        `json:"thumbnail,omitempty"`
}

const DefaultLectureType = "専門講義"

type Lecture struct {
	ID          int           `json:"id"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Type        string        `json:"type"`
}

// Career is a path graduates have taken after the lab
type Career struct {
	ID          int           `json:"id"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
}

type Award struct {
	ID        int           `json:"id"`
	Thumbnail string        `json:"thumbnail,omitempty"`
	Name      LocalizedText `json:"name"`
	MemberIDs []int         `json:"member_ids,omitempty"`
	Date      time.Time     `json:"date"`
}

// Dated is implemented by items listed newest first on the site
type Dated interface {
	GetDate() time.Time
}

func (n NewsItem) GetDate() time.Time { return n.Date }
func (a Award) GetDate() time.Time    { return a.Date }

// SortByDateDesc sorts in place, newest first. Items with equal dates keep
// their index order.
func SortByDateDesc[T Dated](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GetDate().After(items[j].GetDate())
	})
}
