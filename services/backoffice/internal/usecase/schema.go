package usecase

// Schema describes one content kind.
type Schema struct {
	// Kind names the collection and keys its list cache.
	Kind string
	// Label is the human readable singular used in response messages.
	Label string
	// AssetField is the multipart field carrying the image or logo.
	AssetField    string
	AssetRequired bool
}

var (
	PostSchema       = Schema{Kind: "posts", Label: "Post", AssetField: "image", AssetRequired: true}
	CasinoSchema     = Schema{Kind: "casinos", Label: "Casino", AssetField: "logo", AssetRequired: true}
	GameSchema       = Schema{Kind: "games", Label: "Game", AssetField: "image", AssetRequired: true}
	GlobalSlotSchema = Schema{Kind: "global_slots", Label: "Global Lucky Slot", AssetField: "image"}
	PokerSiteSchema  = Schema{Kind: "poker_sites", Label: "Poker site", AssetField: "logo", AssetRequired: true}
	CasinoCardSchema = Schema{Kind: "casino_cards", Label: "Casino card", AssetField: "image", AssetRequired: true}
	BestCasinoSchema = Schema{Kind: "best_casinos", Label: "Best Casino", AssetField: "logo", AssetRequired: true}
)
