package meta

import "fmt"

// CardIndex maps a suit and rank to the card's row in the deck-shaped
// tensors. Cards are laid out suit-major, matching SuitsRanksShape.
func CardIndex(suit, rank int) int {
	if suit < 0 || suit >= NumSuits {
		panic(fmt.Sprintf("suit %d out of range", suit))
	}
	if rank < 0 || rank >= NumRanks {
		panic(fmt.Sprintf("rank %d out of range", rank))
	}
	return suit*NumRanks + rank
}

func SuitOf(card int) int {
	checkCard(card)
	return card / NumRanks
}

func RankOf(card int) int {
	checkCard(card)
	return card % NumRanks
}

func checkCard(card int) {
	if card < 0 || card >= CardsInDeck {
		panic(fmt.Sprintf("card %d out of range", card))
	}
}
