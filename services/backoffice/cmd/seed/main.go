package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"lv33global/pkg/config"
	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/app"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/usecase"
)

// seedForm submits a prepared record through the regular create flow.
type seedForm[E any] struct {
	record E
}

func (f seedForm[E]) Missing() []string { return nil }

func (f seedForm[E]) Apply(record *E) error {
	*record = f.record
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	application, err := app.NewApp(cfg)
	if err != nil {
		log.Error("Failed to initialize application: %v", err)
		panic(err)
	}
	defer application.Shutdown()

	s := &seeder{
		uc:         application.UseCases(),
		log:        log,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	if err := s.run(context.Background()); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

type seeder struct {
	uc         *usecase.UseCases
	log        *logger.Logger
	httpClient *http.Client
}

func (s *seeder) run(ctx context.Context) error {
	_, err := s.uc.Auth.Signup(ctx, "admin", "admin@lv33global.com", "admin123")
	switch {
	case errors.Is(err, usecase.ErrConflict):
		s.log.Info("User admin already exists, skipping")
	case err != nil:
		return fmt.Errorf("failed to create admin user: %w", err)
	default:
		s.log.Info("Created user: admin (admin@lv33global.com)")
	}

	posts := []entity.Post{
		{Title: "Top 10 Casino Bonuses This Month", Content: "Our pick of the best welcome offers.", Link: "https://lv33global.com/news/bonuses", Category: entity.CategoryCasinoBettingNews},
		{Title: "New Live Dealer Studio Opens", Content: "A new studio brings more live tables.", Link: "https://lv33global.com/news/live", Category: entity.CategoryFeaturedNews},
	}
	if err := seedKind[entity.Post](ctx, s, s.uc.Posts, posts, func(p entity.Post) string { return p.Title }); err != nil {
		return err
	}

	casinos := []entity.Casino{
		{Label1: "Royal Spin", Label2: "Up to $500", Country: "US", Website: "https://royalspin.example", Payments: []string{"Visa", "Mastercard"}, Ranking: 1},
		{Label1: "Lucky Star", Label2: "100 Free Spins", Country: "UK", Website: "https://luckystar.example", Payments: []string{"PayPal"}, Ranking: 2},
	}
	if err := seedKind(ctx, s, s.uc.Casinos, casinos, func(c entity.Casino) string { return c.Label1 }); err != nil {
		return err
	}

	games := []entity.Game{
		{Title: "Book of Dead", Link: "https://lv33global.com/games/book-of-dead"},
		{Title: "Starburst", Link: "https://lv33global.com/games/starburst"},
	}
	if err := seedKind(ctx, s, s.uc.Games, games, func(g entity.Game) string { return g.Title }); err != nil {
		return err
	}

	slots := []entity.GlobalSlot{
		{Name: "Mega Fortune", Promo: "50 spins", Score: 9.4, Stars: 5, Link: "https://lv33global.com/slots/mega", Payments: []string{"Visa", "Skrill"}},
	}
	if err := seedKind(ctx, s, s.uc.GlobalSlots, slots, func(g entity.GlobalSlot) string { return g.Name }); err != nil {
		return err
	}

	sites := []entity.PokerSite{
		{Name: "River Room", Description: "Soft cash games around the clock.", Rating: 4.7, Link: "https://riverroom.example"},
	}
	if err := seedKind(ctx, s, s.uc.PokerSites, sites, func(p entity.PokerSite) string { return p.Name }); err != nil {
		return err
	}

	cards := []entity.CasinoCard{
		{Name: "Royal Spin", SafetyIndex: 8.9, Features: "Fast withdrawals", Bonus: "100% up to $500", TermsLink: "https://royalspin.example/terms", VisitLink: "https://royalspin.example", ReviewLink: "https://lv33global.com/reviews/royal-spin", Rank: 1},
	}
	if err := seedKind(ctx, s, s.uc.CasinoCards, cards, func(c entity.CasinoCard) string { return c.Name }); err != nil {
		return err
	}

	best := []entity.BestCasino{
		{Promo: "200% Welcome", Code: "LV33", MinDeposit: "$10", Wagering: "35x", Rating: 4.8, Link: "https://royalspin.example"},
	}
	return seedKind(ctx, s, s.uc.BestCasinos, best, func(b entity.BestCasino) string { return b.Promo })
}

// seedKind creates records only when the kind has none yet.
func seedKind[E any](ctx context.Context, s *seeder, uc usecase.ContentUseCase[E], records []E, name func(E) string) error {
	kind := uc.Schema().Kind

	existing, err := uc.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", kind, err)
	}
	if len(existing) > 0 {
		s.log.Info("%s already seeded, skipping", kind)
		return nil
	}

	for i, record := range records {
		asset, err := s.placeholder(uc.Schema().AssetField, fmt.Sprintf("%s-%d.png", kind, i+1), name(record))
		if err != nil {
			return err
		}
		if _, err := uc.Create(ctx, seedForm[E]{record: record}, asset); err != nil {
			return fmt.Errorf("failed to create %s %q: %w", kind, name(record), err)
		}
		s.log.Info("Created %s: %s", kind, name(record))
	}
	return nil
}

// placeholder fetches a labelled placeholder image, falling back to a
// generated PNG when the image service is unreachable.
func (s *seeder) placeholder(field, filename, label string) (*multipart.FileHeader, error) {
	data, err := s.fetchPlaceholder(label)
	if err != nil {
		s.log.Warn("Failed to fetch placeholder image: %v (using generated image)", err)
		if data, err = generatedPNG(); err != nil {
			return nil, err
		}
	}
	return fileHeader(field, filename, data)
}

func (s *seeder) fetchPlaceholder(label string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, "https://placehold.co/256x256/png", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("text", label)
	req.URL.RawQuery = q.Encode()

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("placeholder service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("received empty image data")
	}
	return data, nil
}

func generatedPNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 0x1f, G: uint8(x * 4), B: uint8(y * 4), A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// fileHeader wraps data the way an uploaded form file arrives.
func fileHeader(field, filename string, data []byte) (*multipart.FileHeader, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(int64(len(data)) + 1<<20)
	if err != nil {
		return nil, err
	}
	return form.File[field][0], nil
}
