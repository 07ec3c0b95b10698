package minefield

import (
	"strconv"
	"strings"
)

// Hint strings shown while the current map has minefields.
const (
	HintTip  = "Be carefull, there are mines in this map!"
	HintMotd = "Be carefull for minefields!"
	HintHelp = "There are mines in this map!"
)

// DefaultKillMessages is the built-in flavor text catalog.
// Templates may use {player} and {mine_kills}.
var DefaultKillMessages = []string{
	"{player} wandered into a minefield",
	"{player} should not walk into a minefield",
	"{player} was not carefull enough in the minefield",
	"{player} thought those mines were toys!",
	"{player} showed his team the minefield. What a hero!",
	"{player} should not use their spade to defuse mines.",
	"{player} made a huge mess in the minefield.",
	"{player} detected a mine.",
	"{player} has concluded the mine-sweeping demonstration.",
	"{player} now marks the edge of the minefield.",
	"{player} disarmed a mine by stomping on it.",
	"{player} should build a bridge across the minefield next time.",
	"{player} forgot about the minefield.",
	"Ummmm {player}, Accidentally , the minefield...",
	"{player} made soup in the minefield.",
	"Score Minefield: {mine_kills}, {player} 0, Minefield is Winning!!",
}

// FormatKillMessage substitutes {player} and {mine_kills} in tmpl.
// Unknown placeholders are left as is.
func FormatKillMessage(tmpl, player string, mineKills int) string {
	return strings.NewReplacer(
		"{player}", player,
		"{mine_kills}", strconv.Itoa(mineKills),
	).Replace(tmpl)
}
