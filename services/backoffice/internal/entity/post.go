package entity

import "time"

const (
	CategoryCasinoBettingNews = "casino_betting_news"
	CategoryFeaturedNews      = "featured_news"
)

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Link      string    `json:"link"`
	Image     *string   `json:"image"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Post) RecordID() string         { return p.ID }
func (p *Post) AssetPath() string        { return assetPath(p.Image) }
func (p *Post) SetAssetPath(path string) { p.Image = optionalPath(path) }
