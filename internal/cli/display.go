package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"pokerengine/internal/util"
	"pokerengine/pkg/card"
	"pokerengine/pkg/engine"
)

// DisplayGameState prints the current redacted view of a hand, generalizing
// the teacher's DisplayGameState (internal/cli/display.go) from a fixed
// Pre-Flop/Flop/Turn/River board into an arbitrary rules.Document's named
// steps and hole-card subsets.
func DisplayGameState(g *engine.Game, observerID string, devMode bool) {
	if !devMode {
		clearScreen()
	}

	view := g.ViewFor(observerID)
	var output string

	output += fmt.Sprintf("\n\n--- %s | STEP: %s | POT: %s ---\n",
		strings.ToUpper(view.State.String()), view.StepName, util.FormatNumber(view.Pot+view.CurrentBet),
	)

	for subset, cards := range view.Community {
		output += fmt.Sprintf("Board (%s): %s\n", subset, cardStrings(cards))
	}
	output += "\n"

	totalChips := view.Pot
	output += fmt.Sprintln("Players:")
	for _, sv := range view.Seats {
		if !sv.Occupied {
			continue
		}

		indicator := "  "
		if sv.SeatNumber == view.CurrentActor {
			indicator = "> "
		}

		status := ""
		if sv.Status == "Folded" {
			status = "(Folded)"
		}
		if sv.Status == "All-In" {
			status = "(All In)"
		}

		handInfo := ""
		for subset, cards := range sv.HoleCards {
			handInfo += fmt.Sprintf("| %s: %s ", subset, cardStrings(cards))
		}
		for subset, n := range sv.HiddenCounts {
			handInfo += fmt.Sprintf("| %s: %s ", subset, strings.Repeat("?? ", n))
		}

		line := fmt.Sprintf("%s%-10s: Chips: %-9s, Bet: %-6s %s %s",
			indicator, sv.Name, util.FormatNumber(sv.Chips), util.FormatNumber(sv.CurrentBet), status, handInfo)
		output += fmt.Sprintln(strings.TrimSpace(line))

		totalChips += sv.Chips
	}

	logrus.Debugf("total chips in play: %s", util.FormatNumber(totalChips))

	output += fmt.Sprintln("-------------------------------------------------")
	fmt.Print(output)
}

func cardStrings(cards []card.Card) string {
	strs := make([]string, len(cards))
	for i, c := range cards {
		strs[i] = c.String()
	}
	return strings.Join(strs, " ")
}

// clearScreen clears the console.
func clearScreen() {
	fmt.Print("\033[H\033[2J")
}
