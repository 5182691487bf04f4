package entity

import "time"

type Game struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Game) RecordID() string         { return g.ID }
func (g *Game) AssetPath() string        { return assetPath(g.Image) }
func (g *Game) SetAssetPath(path string) { g.Image = optionalPath(path) }

// GlobalSlot is a "Global Lucky Slot" promotion. Its image is optional.
type GlobalSlot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Promo     string    `json:"promo"`
	Score     float64   `json:"score"`
	Stars     int       `json:"stars"`
	Link      string    `json:"link"`
	Image     *string   `json:"image"`
	Payments  []string  `json:"payments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *GlobalSlot) RecordID() string         { return g.ID }
func (g *GlobalSlot) AssetPath() string        { return assetPath(g.Image) }
func (g *GlobalSlot) SetAssetPath(path string) { g.Image = optionalPath(path) }

type PokerSite struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Link        string    `json:"link"`
	Logo        *string   `json:"logo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *PokerSite) RecordID() string         { return p.ID }
func (p *PokerSite) AssetPath() string        { return assetPath(p.Logo) }
func (p *PokerSite) SetAssetPath(path string) { p.Logo = optionalPath(path) }
