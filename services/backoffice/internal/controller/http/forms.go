package http

import (
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/usecase"
)

type PostForm struct {
	Title    formValue `form:"title" json:"title"`
	Content  formValue `form:"content" json:"content"`
	Link     formValue `form:"link" json:"link"`
	Category formValue `form:"category" json:"category"`
}

func (f *PostForm) Missing() []string {
	return missing("title", f.Title, "content", f.Content)
}

func (f *PostForm) Apply(p *entity.Post) error {
	p.Title = f.Title.String()
	p.Content = f.Content.String()
	p.Link = f.Link.String()
	p.Category = f.Category.String()
	return nil
}

type CasinoForm struct {
	ID      formValue `form:"id" json:"id"`
	Label1  formValue `form:"label1" json:"label1"`
	Label2  formValue `form:"label2" json:"label2"`
	Country formValue `form:"country" json:"country"`
	Website formValue `form:"website" json:"website"`
	Ranking formValue `form:"ranking" json:"ranking"`
	paymentsField
}

// BodyID returns the id submitted in the body by the legacy update route.
func (f *CasinoForm) BodyID() string {
	return f.ID.String()
}

func (f *CasinoForm) Missing() []string {
	return missing(
		"label1", f.Label1,
		"label2", f.Label2,
		"country", f.Country,
		"website", f.Website,
		"ranking", f.Ranking,
	)
}

func (f *CasinoForm) Apply(c *entity.Casino) error {
	var p fieldParser
	c.Label1 = f.Label1.String()
	c.Label2 = f.Label2.String()
	c.Country = f.Country.String()
	c.Website = f.Website.String()
	c.Ranking = p.int("ranking", f.Ranking)
	c.Payments = f.list()
	return p.err()
}

type GameForm struct {
	Title formValue `form:"title" json:"title"`
	Link  formValue `form:"link" json:"link"`
}

func (f *GameForm) Missing() []string {
	return missing("title", f.Title, "link", f.Link)
}

func (f *GameForm) Apply(g *entity.Game) error {
	g.Title = f.Title.String()
	g.Link = f.Link.String()
	return nil
}

type GlobalSlotForm struct {
	Name  formValue `form:"name" json:"name"`
	Promo formValue `form:"promo" json:"promo"`
	Score formValue `form:"score" json:"score"`
	Stars formValue `form:"stars" json:"stars"`
	Link  formValue `form:"link" json:"link"`
	paymentsField
}

func (f *GlobalSlotForm) Missing() []string {
	return missing("name", f.Name)
}

func (f *GlobalSlotForm) Apply(s *entity.GlobalSlot) error {
	var p fieldParser
	s.Name = f.Name.String()
	s.Promo = f.Promo.String()
	s.Score = p.float("score", f.Score)
	s.Stars = p.int("stars", f.Stars)
	s.Link = f.Link.String()
	s.Payments = f.list()
	return p.err()
}

type PokerSiteForm struct {
	Name        formValue `form:"name" json:"name"`
	Description formValue `form:"description" json:"description"`
	Rating      formValue `form:"rating" json:"rating"`
	Link        formValue `form:"link" json:"link"`
}

func (f *PokerSiteForm) Missing() []string {
	return missing(
		"name", f.Name,
		"description", f.Description,
		"rating", f.Rating,
		"link", f.Link,
	)
}

func (f *PokerSiteForm) Apply(s *entity.PokerSite) error {
	var p fieldParser
	s.Name = f.Name.String()
	s.Description = f.Description.String()
	s.Rating = p.float("rating", f.Rating)
	s.Link = f.Link.String()
	return p.err()
}

// CasinoCardForm accepts both snake_case and camelCase field names.
type CasinoCardForm struct {
	Name             formValue `form:"name" json:"name"`
	SafetyIndex      formValue `form:"safety_index" json:"safety_index"`
	SafetyIndexCamel formValue `form:"safetyIndex" json:"safetyIndex"`
	Features         formValue `form:"features" json:"features"`
	Bonus            formValue `form:"bonus" json:"bonus"`
	TermsLink        formValue `form:"terms_link" json:"terms_link"`
	TermsLinkCamel   formValue `form:"termsLink" json:"termsLink"`
	VisitLink        formValue `form:"visit_link" json:"visit_link"`
	VisitLinkCamel   formValue `form:"visitLink" json:"visitLink"`
	ReviewLink       formValue `form:"review_link" json:"review_link"`
	ReviewLinkCamel  formValue `form:"reviewLink" json:"reviewLink"`
	Rank             formValue `form:"rank" json:"rank"`
}

func (f *CasinoCardForm) Missing() []string {
	return missing(
		"name", f.Name,
		"safety_index", first(f.SafetyIndex, f.SafetyIndexCamel),
		"features", f.Features,
		"bonus", f.Bonus,
		"visit_link", first(f.VisitLink, f.VisitLinkCamel),
		"review_link", first(f.ReviewLink, f.ReviewLinkCamel),
	)
}

func (f *CasinoCardForm) Apply(c *entity.CasinoCard) error {
	var p fieldParser
	c.Name = f.Name.String()
	c.SafetyIndex = p.float("safety_index", first(f.SafetyIndex, f.SafetyIndexCamel))
	c.Features = f.Features.String()
	c.Bonus = f.Bonus.String()
	c.TermsLink = first(f.TermsLink, f.TermsLinkCamel).String()
	c.VisitLink = first(f.VisitLink, f.VisitLinkCamel).String()
	c.ReviewLink = first(f.ReviewLink, f.ReviewLinkCamel).String()
	c.Rank = p.int("rank", f.Rank)
	return p.err()
}

type BestCasinoForm struct {
	Promo      formValue `form:"promo" json:"promo"`
	Code       formValue `form:"code" json:"code"`
	MinDeposit formValue `form:"min_deposit" json:"min_deposit"`
	Wagering   formValue `form:"wagering" json:"wagering"`
	Rating     formValue `form:"rating" json:"rating"`
	Link       formValue `form:"link" json:"link"`
}

func (f *BestCasinoForm) Missing() []string {
	return missing(
		"promo", f.Promo,
		"code", f.Code,
		"min_deposit", f.MinDeposit,
		"wagering", f.Wagering,
		"rating", f.Rating,
		"link", f.Link,
	)
}

func (f *BestCasinoForm) Apply(b *entity.BestCasino) error {
	var p fieldParser
	b.Promo = f.Promo.String()
	b.Code = f.Code.String()
	b.MinDeposit = f.MinDeposit.String()
	b.Wagering = f.Wagering.String()
	b.Rating = p.float("rating", f.Rating)
	b.Link = f.Link.String()
	return p.err()
}

var (
	_ usecase.Form[entity.Post]       = (*PostForm)(nil)
	_ usecase.Form[entity.Casino]     = (*CasinoForm)(nil)
	_ usecase.Form[entity.Game]       = (*GameForm)(nil)
	_ usecase.Form[entity.GlobalSlot] = (*GlobalSlotForm)(nil)
	_ usecase.Form[entity.PokerSite]  = (*PokerSiteForm)(nil)
	_ usecase.Form[entity.CasinoCard] = (*CasinoCardForm)(nil)
	_ usecase.Form[entity.BestCasino] = (*BestCasinoForm)(nil)
)
