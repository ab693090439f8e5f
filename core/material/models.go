package material

import (
	"time"

	"github.com/trezcool/mentorhub/core"
)

type Type string

// Material types
const (
	TypeDocument Type = "document"
	TypeVideo    Type = "video"
	TypeTemplate Type = "template"
	TypeGuide    Type = "guide"
)

type Material struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        Type      `json:"type"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	UploadDate  time.Time `json:"upload_date"`
	Downloads   int       `json:"downloads"`
	FileURL     string    `json:"file_url,omitempty"`
}

// QueryFilter applies an AND operation on its fields.
// Search does a case-insensitive match on one of Material.Title or Material.Description.
type QueryFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Type     string `query:"type" validate:"omitempty,oneof=all document video template guide"`
}

func (f QueryFilter) matches(m Material) bool {
	return core.MatchesSearch(f.Search, m.Title, m.Description) &&
		core.MatchesFilter(f.Category, m.Category) &&
		core.MatchesFilter(f.Type, string(m.Type))
}
