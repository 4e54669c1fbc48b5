package config

import "github.com/threekingdoms/engine/model"

// CardDef is one distinct printed card a deck's catalog registers once,
// independent of how many physical copies of it the deck carries. Copies
// physical cards, each its own model.CardID, at game-build time.
type CardDef struct {
	DefID   model.DefID
	Name    string
	Type    model.CardType
	Subtype model.Subtype
	Suit    model.Suit
	Rank    model.Rank
	Copies  int
}

// DeckConfig is the full catalog of printed cards a game is built from.
type DeckConfig struct {
	Defs []CardDef
}

// PlayerConfig seats one player: which seat, which hero (if already
// chosen), health, faction, and gender. HeroID may be empty — a caller
// that wants to assign heroes after seating calls register_skills'
// skill.Manager.LoadHero itself once hero selection is done.
type PlayerConfig struct {
	Seat          model.Seat
	HeroID        string
	MaxHealth     int
	InitialHealth int
	FactionID     model.Camp
	Gender        model.Gender
}

// GameConfig is everything create_game needs to build a fresh Game:
// the seated players, the deck catalog, the PRNG seed driving the
// initial shuffle (and every other random decision made thereafter, for
// deterministic replay), a game mode identifier an embedder's own
// catalog can key variant rules off of, and free-form variant options
// the core itself never reads.
type GameConfig struct {
	PlayerConfigs  []PlayerConfig
	Deck           DeckConfig
	Seed           int64
	GameModeID     string
	VariantOptions map[string]any

	// EquipmentGrants maps an equipment card's DefID to the skill id it
	// grants its owner for as long as it stays equipped (e.g. a weapon
	// that doubles as Zhuge Liang's Bazhen-style passive). A DefID absent
	// from this map simply grants no skill.
	EquipmentGrants map[model.DefID]string
}

// DefaultMaxHealth is the health a player config defaults to when a
// caller doesn't supply a hero-specific value (heroes that vary max
// health are an embedder/content-pack concern layered on top of this
// default).
const DefaultMaxHealth = 4

// DefaultPlayerConfigs produces n seated, healthy player configs with no
// hero or faction assigned yet — a starting point a caller overrides
// field-by-field once seating and hero selection are known.
func DefaultPlayerConfigs(n int) []PlayerConfig {
	configs := make([]PlayerConfig, n)
	for i := range configs {
		configs[i] = PlayerConfig{
			Seat:          model.Seat(i),
			MaxHealth:     DefaultMaxHealth,
			InitialHealth: DefaultMaxHealth,
		}
	}
	return configs
}
