// meta/meta.go
package meta

// Deck dimensions.
const (
	CardsInDeck = 52
	NumSuits    = 4
	NumRanks    = 13
)

// NumPlayers defines the number of players seated at a table.
const NumPlayers = 4

// PlaysPerTrick defines the number of cards played in one trick.
const PlaysPerTrick = 4

// MoonFlagsLen defines the number of auxiliary shoot-the-moon flags.
const MoonFlagsLen = 4

// PointsSoFarLen is one slot per play in the trick, one for the running
// total, and the moon flags.
const PointsSoFarLen = PlaysPerTrick + 1 + MoonFlagsLen

// Per-card feature columns. Legal plays sits at column 4 so the model can
// slice it out after the per-player probabilities.
const (
	ColPlayer0 = iota
	ColPlayer1
	ColPlayer2
	ColPlayer3
	ColLegalPlay
	ColHighCard
	ColPointValue
)

// InputFeatures is the number of feature columns per card.
const InputFeatures = NumPlayers + 3

// ExtraFeatures defines the number of additional scalar features.
const ExtraFeatures = 33

const TotalScalarFeatures = CardsInDeck*InputFeatures + PointsSoFarLen + ExtraFeatures

// MoonClasses is the cardinality of the shoot-the-moon outcome per card.
const MoonClasses = 3
