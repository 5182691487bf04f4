package model

import (
	"time"

	"gorm.io/gorm"
)

type PostModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Link      string    `gorm:"type:varchar(500)"`
	Image     *string   `gorm:"type:varchar(500)"`
	Category  string    `gorm:"type:varchar(100);index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}

type CasinoModel struct {
	ID        string  `gorm:"type:varchar(36);primaryKey"`
	Label1    string  `gorm:"type:varchar(255);not null"`
	Label2    string  `gorm:"type:varchar(255);not null"`
	Country   string  `gorm:"type:varchar(100);not null"`
	Website   string  `gorm:"type:varchar(500);not null"`
	Logo      *string `gorm:"type:varchar(500)"`
	Payments  string  `gorm:"type:text;not null;default:'[]'"`
	Ranking   int     `gorm:"not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CasinoModel) TableName() string {
	return "casinos"
}

func (c *CasinoModel) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}

type GameModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Link      string    `gorm:"type:varchar(500);not null"`
	Image     *string   `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (GameModel) TableName() string {
	return "games"
}

func (g *GameModel) BeforeCreate(tx *gorm.DB) error {
	newID(&g.ID)
	return nil
}

type GlobalSlotModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Promo     string    `gorm:"type:varchar(255)"`
	Score     float64   `gorm:"not null;default:0"`
	Stars     int       `gorm:"not null;default:0"`
	Link      string    `gorm:"type:varchar(500)"`
	Image     *string   `gorm:"type:varchar(500)"`
	Payments  string    `gorm:"type:text;not null;default:'[]'"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (GlobalSlotModel) TableName() string {
	return "global_slots"
}

func (g *GlobalSlotModel) BeforeCreate(tx *gorm.DB) error {
	newID(&g.ID)
	return nil
}

type PokerSiteModel struct {
	ID          string  `gorm:"type:varchar(36);primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Rating      float64 `gorm:"not null;default:0;index"`
	Link        string  `gorm:"type:varchar(500)"`
	Logo        *string `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PokerSiteModel) TableName() string {
	return "poker_sites"
}

func (p *PokerSiteModel) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}

type CasinoCardModel struct {
	ID          string  `gorm:"type:varchar(36);primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	SafetyIndex float64 `gorm:"not null;default:0"`
	Features    string  `gorm:"type:text"`
	Bonus       string  `gorm:"type:varchar(255)"`
	TermsLink   string  `gorm:"type:varchar(500)"`
	VisitLink   string  `gorm:"type:varchar(500)"`
	ReviewLink  string  `gorm:"type:varchar(500)"`
	Image       *string `gorm:"type:varchar(500)"`
	Rank        int     `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CasinoCardModel) TableName() string {
	return "casino_cards"
}

func (c *CasinoCardModel) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}

type BestCasinoModel struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	Promo      string    `gorm:"type:varchar(255);not null"`
	Code       string    `gorm:"type:varchar(100)"`
	MinDeposit string    `gorm:"type:varchar(100)"`
	Wagering   string    `gorm:"type:varchar(100)"`
	Rating     float64   `gorm:"not null;default:0;index"`
	Link       string    `gorm:"type:varchar(500)"`
	Logo       *string   `gorm:"type:varchar(500)"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (BestCasinoModel) TableName() string {
	return "best_casinos"
}

func (b *BestCasinoModel) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	return nil
}
