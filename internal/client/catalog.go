package client

import (
	"context"

	"morinolab/site/internal/assets"
	"morinolab/site/internal/domain"
)

// Catalog converts generic index records into the typed models pages render
type Catalog struct {
	client ContentClient
}

func NewCatalog(client ContentClient) *Catalog {
	return &Catalog{client: client}
}

func loadTyped[T any](ctx context.Context, c *Catalog, contentType domain.ContentType, convert func(domain.Record, *assets.Resolver) T) ([]T, error) {
	records, err := c.client.Load(ctx, contentType)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(records))
	for _, r := range records {
		items = append(items, convert(r, c.client.Resolver()))
	}
	return items, nil
}

func (c *Catalog) Tags(ctx context.Context) ([]domain.Tag, error) {
	return loadTyped(ctx, c, domain.ContentTypeTag, ToTag)
}

func (c *Catalog) MemberTypes(ctx context.Context) ([]domain.MemberType, error) {
	return loadTyped(ctx, c, domain.ContentTypeMemberType, ToMemberType)
}

func (c *Catalog) Members(ctx context.Context) ([]domain.Member, error) {
	return loadTyped(ctx, c, domain.ContentTypeMember, ToMember)
}

func (c *Catalog) Publications(ctx context.Context) ([]domain.Publication, error) {
	return loadTyped(ctx, c, domain.ContentTypePublication, ToPublication)
}

func (c *Catalog) Themes(ctx context.Context) ([]domain.Theme, error) {
	return loadTyped(ctx, c, domain.ContentTypeTheme, ToTheme)
}

func (c *Catalog) News(ctx context.Context) ([]domain.NewsItem, error) {
	return loadTyped(ctx, c, domain.ContentTypeNews, ToNewsItem)
}

func (c *Catalog) Lectures(ctx context.Context) ([]domain.Lecture, error) {
	return loadTyped(ctx, c, domain.ContentTypeLecture, ToLecture)
}

func (c *Catalog) Careers(ctx context.Context) ([]domain.Career, error) {
	return loadTyped(ctx, c, domain.ContentTypeCareer, ToCareer)
}

func (c *Catalog) Awards(ctx context.Context) ([]domain.Award, error) {
	return loadTyped(ctx, c, domain.ContentTypeAward, ToAward)
}

func recordID(r domain.Record) int {
	return domain.ParseInt(r.ID, 0)
}

func ToTag(r domain.Record, _ *assets.Resolver) domain.Tag {
	return domain.Tag{ID: recordID(r), Name: r.Localized("name")}
}

func ToMemberType(r domain.Record, _ *assets.Resolver) domain.MemberType {
	return domain.MemberType{ID: recordID(r), Name: r.Localized("name")}
}

func ToMember(r domain.Record, res *assets.Resolver) domain.Member {
	return domain.Member{
		ID:           recordID(r),
		Name:         r.Localized("name"),
		Description:  r.Localized("desc"),
		MemberTypeID: domain.ParseInt(r.Attr("memberTypeId"), 0),
		Thumbnail:    res.Thumbnail(domain.ContentTypeMember, r.Attr("thumbnail")),
		TagIDs:       domain.ParseIDList(r.Attr("tagIds")),
		GradYear:     domain.ParseInt(r.Attr("gradYear"), 0),
	}
}

func ToPublication(r domain.Record, res *assets.Resolver) domain.Publication {
	return domain.Publication{
		ID:              recordID(r),
		AuthorMemberIDs: domain.ParseIDList(r.Attr("authorMemberIds")),
		TagIDs:          domain.ParseIDList(r.Attr("tagIds")),
		Title:           r.Localized("title"),
		PublicationName: r.Localized("publicationName"),
		Thumbnail:       res.Thumbnail(domain.ContentTypePublication, r.Attr("thumbnail")),
		PublishedDate:   domain.ParseDate(r.Attr("publishedDate")),
	}
}

func ToTheme(r domain.Record, res *assets.Resolver) domain.Theme {
	return domain.Theme{
		ID:              recordID(r),
		Thumbnail:       res.Thumbnail(domain.ContentTypeTheme, r.Attr("thumbnail")),
		Name:            r.Localized("name"),
		Description:     r.Localized("desc"),
		KeyAchievements: r.Attr("keyAchievements"),
	}
}

func ToNewsItem(r domain.Record, res *assets.Resolver) domain.NewsItem {
	return domain.NewsItem{
		ID:        recordID(r),
		Date:      domain.ParseDate(r.Attr("date")),
		Name:      r.Localized("name"),
		Thumbnail: res.Thumbnail(domain.ContentTypeNews, r.Attr("thumbnail")),
	}
}

func ToLecture(r domain.Record, res *assets.Resolver) domain.Lecture {
	lectureType := r.Attr("type")
	if lectureType == "" {
		lectureType = domain.DefaultLectureType
	}
	return domain.Lecture{
		ID:          recordID(r),
		Thumbnail:   res.Thumbnail(domain.ContentTypeLecture, r.Attr("thumbnail")),
		Name:        r.Localized("name"),
		Description: r.Localized("desc"),
		Type:        lectureType,
	}
}

func ToCareer(r domain.Record, res *assets.Resolver) domain.Career {
	return domain.Career{
		ID:          recordID(r),
		Thumbnail:   res.Thumbnail(domain.ContentTypeCareer, r.Attr("thumbnail")),
		Name:        r.Localized("name"),
		Description: r.Localized("desc"),
	}
}

func ToAward(r domain.Record, res *assets.Resolver) domain.Award {
	return domain.Award{
		ID:        recordID(r),
		Thumbnail: res.Thumbnail(domain.ContentTypeAward, r.Attr("thumbnail")),
		Name:      r.Localized("name"),
		MemberIDs: domain.ParseIDList(r.Attr("memberIds")),
		Date:      domain.ParseDate(r.Attr("date")),
	}
}
