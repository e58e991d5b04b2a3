package domain

type ContentType string

func (c ContentType) String() string {
	return string(c)
}

const (
	ContentTypeNews        ContentType = "news"
	ContentTypeMember      ContentType = "member"
	ContentTypePublication ContentType = "publication"
	ContentTypeAward       ContentType = "award"
	ContentTypeTheme       ContentType = "theme"
	ContentTypeLecture     ContentType = "lecture"
	ContentTypeCareer      ContentType = "career"
	ContentTypeTag         ContentType = "tags"
	ContentTypeMemberType  ContentType = "membertype"
)

var ContentTypes = []ContentType{
	ContentTypeNews,
	ContentTypeMember,
	ContentTypePublication,
	ContentTypeAward,
	ContentTypeTheme,
	ContentTypeLecture,
	ContentTypeCareer,
	ContentTypeTag,
	ContentTypeMemberType,
}

// Valid reports whether c is one of the known content types
func (c ContentType) Valid() bool {
	for _, ct := range ContentTypes {
		if ct == c {
			return true
		}
	}
	return false
}

// IndexFile returns the index location relative to the index root, e.g. "news/news.csv"
func (c ContentType) IndexFile() string {
	return string(c) + "/" + string(c) + ".csv"
}

func (c ContentType) GetDisplayName() LocalizedText {
	switch c {
	case ContentTypeNews:
		return LocalizedText{Ja: "ニュース", En: "News"}
	case ContentTypeMember:
		return LocalizedText{Ja: "メンバー", En: "Members"}
	case ContentTypePublication:
		return LocalizedText{Ja: "業績", En: "Publications"}
	case ContentTypeAward:
		return LocalizedText{Ja: "受賞", En: "Awards"}
	case ContentTypeTheme:
		return LocalizedText{Ja: "研究テーマ", En: "Research"}
	case ContentTypeLecture:
		return LocalizedText{Ja: "講義", En: "Lectures"}
	case ContentTypeCareer:
		return LocalizedText{Ja: "キャリア", En: "Career"}
	case ContentTypeTag:
		return LocalizedText{Ja: "タグ", En: "Tags"}
	case ContentTypeMemberType:
		return LocalizedText{Ja: "メンバー区分", En: "Member Types"}
	default:
		return LocalizedText{En: "Unknown"}
	}
}
