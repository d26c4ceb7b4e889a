package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pokerengine/internal/util"
	"pokerengine/pkg/engine"
)

// PromptForAction requests the human player to choose among the actions
// ValidActions currently offers, generalizing the teacher's PromptForAction
// (internal/cli/input.go) from a fixed fold/check/call/bet/raise vocabulary
// into the full PlayerActionKind set a rules document's step kinds can ask
// for.
func PromptForAction(g *engine.Game, playerID string) (engine.PlayerActionKind, engine.ActionPayload) {
	DisplayGameState(g, playerID, false)

	opts := g.ValidActions(playerID)
	reader := bufio.NewReader(os.Stdin)

	for {
		betOpts := map[engine.PlayerActionKind]engine.ActionOption{}
		var prompt strings.Builder
		prompt.WriteString("Choose your action: ")
		for _, o := range opts {
			betOpts[o.Kind] = o
			switch o.Kind {
			case engine.ActFold:
				prompt.WriteString("(f)old, ")
			case engine.ActCheck:
				prompt.WriteString("chec(k), ")
			case engine.ActCall:
				prompt.WriteString(fmt.Sprintf("(c)all %s, ", util.FormatNumber(o.MinAmount)))
			case engine.ActBet:
				prompt.WriteString("(b)et, ")
			case engine.ActRaise:
				prompt.WriteString("(r)aise, ")
			default:
				prompt.WriteString(fmt.Sprintf("(%s), ", o.Kind))
			}
		}
		fmt.Print(strings.TrimSuffix(prompt.String(), ", ") + " > ")

		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		switch input {
		case "f":
			if o, ok := betOpts[engine.ActFold]; ok {
				return o.Kind, engine.ActionPayload{}
			}
		case "k":
			if o, ok := betOpts[engine.ActCheck]; ok {
				return o.Kind, engine.ActionPayload{}
			}
		case "c":
			if o, ok := betOpts[engine.ActCall]; ok {
				return o.Kind, engine.ActionPayload{Amount: o.MinAmount}
			}
		case "b":
			if o, ok := betOpts[engine.ActBet]; ok {
				return o.Kind, engine.ActionPayload{Amount: promptForAmount(reader, o)}
			}
		case "r":
			if o, ok := betOpts[engine.ActRaise]; ok {
				return o.Kind, engine.ActionPayload{Amount: promptForAmount(reader, o)}
			}
		default:
			for _, o := range opts {
				if string(o.Kind) == input {
					return o.Kind, promptForNonBetPayload(reader, o)
				}
			}
		}
		fmt.Println("Invalid action.")
	}
}

// promptForAmount requests a bet/raise amount within o's legal range.
func promptForAmount(reader *bufio.Reader, o engine.ActionOption) int {
	for {
		fmt.Printf("Enter amount (min: %s, max: %s): ", util.FormatNumber(o.MinAmount), util.FormatNumber(o.MaxAmount))
		input, _ := reader.ReadString('\n')
		amount, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || amount < o.MinAmount || amount > o.MaxAmount {
			fmt.Println("Invalid amount. Please try again.")
			continue
		}
		return amount
	}
}

// promptForNonBetPayload requests the card selection or declaration a
// discard/expose/pass/separate/declare/choose step needs.
func promptForNonBetPayload(reader *bufio.Reader, o engine.ActionOption) engine.ActionPayload {
	if len(o.AllowedChoices) > 0 {
		for {
			fmt.Printf("Choose one of %v: ", o.AllowedChoices)
			input, _ := reader.ReadString('\n')
			choice := strings.TrimSpace(input)
			for _, c := range o.AllowedChoices {
				if c == choice {
					return engine.ActionPayload{Choice: choice}
				}
			}
			fmt.Println("Invalid choice.")
		}
	}

	for {
		fmt.Printf("Enter card indices (space-separated, %d-%d): ", o.MinCards, o.MaxCards)
		input, _ := reader.ReadString('\n')
		fields := strings.Fields(input)
		if len(fields) < o.MinCards || (o.MaxCards > 0 && len(fields) > o.MaxCards) {
			fmt.Println("Invalid count. Please try again.")
			continue
		}
		indices := make([]int, 0, len(fields))
		ok := true
		for _, f := range fields {
			idx, err := strconv.Atoi(f)
			if err != nil {
				ok = false
				break
			}
			indices = append(indices, idx)
		}
		if !ok {
			fmt.Println("Invalid index. Please try again.")
			continue
		}
		return engine.ActionPayload{CardIndices: indices}
	}
}
