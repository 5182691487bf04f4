package persistent

import (
	"encoding/json"
	"strings"

	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/model"
)

// encodeList is the only place list attributes are serialized for storage.
func encodeList(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// decodeList reads a stored list attribute. Null, blank or unreadable text
// yields an empty list. Values that were stored as a JSON string holding a
// JSON array are unwrapped.
func decodeList(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" || text == "null" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(text), &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}

	var inner string
	if err := json.Unmarshal([]byte(text), &inner); err == nil {
		return decodeList(inner)
	}

	return []string{}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Link:      m.Link,
		Image:     m.Image,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Link:      e.Link,
		Image:     e.Image,
		Category:  e.Category,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCasinoEntity(m *model.CasinoModel) *entity.Casino {
	if m == nil {
		return nil
	}

	return &entity.Casino{
		ID:        m.ID,
		Label1:    m.Label1,
		Label2:    m.Label2,
		Country:   m.Country,
		Website:   m.Website,
		Logo:      m.Logo,
		Payments:  decodeList(m.Payments),
		Ranking:   m.Ranking,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCasinoModel(e *entity.Casino) *model.CasinoModel {
	if e == nil {
		return nil
	}

	return &model.CasinoModel{
		ID:        e.ID,
		Label1:    e.Label1,
		Label2:    e.Label2,
		Country:   e.Country,
		Website:   e.Website,
		Logo:      e.Logo,
		Payments:  encodeList(e.Payments),
		Ranking:   e.Ranking,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToGameEntity(m *model.GameModel) *entity.Game {
	if m == nil {
		return nil
	}

	return &entity.Game{
		ID:        m.ID,
		Title:     m.Title,
		Link:      m.Link,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToGameModel(e *entity.Game) *model.GameModel {
	if e == nil {
		return nil
	}

	return &model.GameModel{
		ID:        e.ID,
		Title:     e.Title,
		Link:      e.Link,
		Image:     e.Image,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToGlobalSlotEntity(m *model.GlobalSlotModel) *entity.GlobalSlot {
	if m == nil {
		return nil
	}

	return &entity.GlobalSlot{
		ID:        m.ID,
		Name:      m.Name,
		Promo:     m.Promo,
		Score:     m.Score,
		Stars:     m.Stars,
		Link:      m.Link,
		Image:     m.Image,
		Payments:  decodeList(m.Payments),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToGlobalSlotModel(e *entity.GlobalSlot) *model.GlobalSlotModel {
	if e == nil {
		return nil
	}

	return &model.GlobalSlotModel{
		ID:        e.ID,
		Name:      e.Name,
		Promo:     e.Promo,
		Score:     e.Score,
		Stars:     e.Stars,
		Link:      e.Link,
		Image:     e.Image,
		Payments:  encodeList(e.Payments),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPokerSiteEntity(m *model.PokerSiteModel) *entity.PokerSite {
	if m == nil {
		return nil
	}

	return &entity.PokerSite{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Rating:      m.Rating,
		Link:        m.Link,
		Logo:        m.Logo,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPokerSiteModel(e *entity.PokerSite) *model.PokerSiteModel {
	if e == nil {
		return nil
	}

	return &model.PokerSiteModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Rating:      e.Rating,
		Link:        e.Link,
		Logo:        e.Logo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCasinoCardEntity(m *model.CasinoCardModel) *entity.CasinoCard {
	if m == nil {
		return nil
	}

	return &entity.CasinoCard{
		ID:          m.ID,
		Name:        m.Name,
		SafetyIndex: m.SafetyIndex,
		Features:    m.Features,
		Bonus:       m.Bonus,
		TermsLink:   m.TermsLink,
		VisitLink:   m.VisitLink,
		ReviewLink:  m.ReviewLink,
		Image:       m.Image,
		Rank:        m.Rank,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCasinoCardModel(e *entity.CasinoCard) *model.CasinoCardModel {
	if e == nil {
		return nil
	}

	return &model.CasinoCardModel{
		ID:          e.ID,
		Name:        e.Name,
		SafetyIndex: e.SafetyIndex,
		Features:    e.Features,
		Bonus:       e.Bonus,
		TermsLink:   e.TermsLink,
		VisitLink:   e.VisitLink,
		ReviewLink:  e.ReviewLink,
		Image:       e.Image,
		Rank:        e.Rank,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToBestCasinoEntity(m *model.BestCasinoModel) *entity.BestCasino {
	if m == nil {
		return nil
	}

	return &entity.BestCasino{
		ID:         m.ID,
		Promo:      m.Promo,
		Code:       m.Code,
		MinDeposit: m.MinDeposit,
		Wagering:   m.Wagering,
		Rating:     m.Rating,
		Link:       m.Link,
		Logo:       m.Logo,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToBestCasinoModel(e *entity.BestCasino) *model.BestCasinoModel {
	if e == nil {
		return nil
	}

	return &model.BestCasinoModel{
		ID:         e.ID,
		Promo:      e.Promo,
		Code:       e.Code,
		MinDeposit: e.MinDeposit,
		Wagering:   e.Wagering,
		Rating:     e.Rating,
		Link:       e.Link,
		Logo:       e.Logo,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
