package entity

import "time"

type Casino struct {
	ID        string    `json:"id"`
	Label1    string    `json:"label1"`
	Label2    string    `json:"label2"`
	Country   string    `json:"country"`
	Website   string    `json:"website"`
	Logo      *string   `json:"logo"`
	Payments  []string  `json:"payments"`
	Ranking   int       `json:"ranking"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Casino) RecordID() string         { return c.ID }
func (c *Casino) AssetPath() string        { return assetPath(c.Logo) }
func (c *Casino) SetAssetPath(path string) { c.Logo = optionalPath(path) }

// CasinoCard is a promotional card shown in the manually ranked casino list.
type CasinoCard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SafetyIndex float64   `json:"safety_index"`
	Features    string    `json:"features"`
	Bonus       string    `json:"bonus"`
	TermsLink   string    `json:"terms_link"`
	VisitLink   string    `json:"visit_link"`
	ReviewLink  string    `json:"review_link"`
	Image       *string   `json:"image"`
	Rank        int       `json:"rank"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *CasinoCard) RecordID() string         { return c.ID }
func (c *CasinoCard) AssetPath() string        { return assetPath(c.Image) }
func (c *CasinoCard) SetAssetPath(path string) { c.Image = optionalPath(path) }

type BestCasino struct {
	ID         string    `json:"id"`
	Promo      string    `json:"promo"`
	Code       string    `json:"code"`
	MinDeposit string    `json:"min_deposit"`
	Wagering   string    `json:"wagering"`
	Rating     float64   `json:"rating"`
	Link       string    `json:"link"`
	Logo       *string   `json:"logo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *BestCasino) RecordID() string         { return b.ID }
func (b *BestCasino) AssetPath() string        { return assetPath(b.Logo) }
func (b *BestCasino) SetAssetPath(path string) { b.Logo = optionalPath(path) }
