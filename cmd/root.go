package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pokerengine/internal/cli"
	"pokerengine/internal/util"
	"pokerengine/pkg/card"
	"pokerengine/pkg/engine"
	"pokerengine/pkg/rules"
)

var (
	ruleStr    string // --rule flag: path to a rules/*.yml variant document.
	numPlayers int    // --players flag: total seats, one human plus the rest CPU.
	buyIn      int    // --buyin flag: starting chip stack per seat.
	devMode    bool   // --dev flag: verbose logging, no screen clearing.
)

const humanPlayerID = "you"

func runGame(cmd *cobra.Command, args []string) {
	util.InitLogger(devMode)

	doc, err := rules.Load(ruleStr)
	if err != nil {
		logrus.Fatalf("failed to load rules document %q: %v", ruleStr, err)
	}

	fmt.Printf("======== %s ========\n", doc.Name)

	if numPlayers < doc.Players.Min {
		numPlayers = doc.Players.Min
	}
	if numPlayers > doc.Players.Max {
		numPlayers = doc.Players.Max
	}

	g := engine.New(doc, numPlayers, card.CryptoSource{})

	if err := g.AddPlayer(humanPlayerID, "YOU", buyIn); err != nil {
		logrus.Fatalf("failed to seat player: %v", err)
	}
	for i := 1; i < numPlayers; i++ {
		id := fmt.Sprintf("cpu-%d", i)
		if err := g.AddPlayer(id, fmt.Sprintf("CPU %d", i), buyIn); err != nil {
			logrus.Fatalf("failed to seat %s: %v", id, err)
		}
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	reader := bufio.NewReader(os.Stdin)

	for {
		if err := g.StartHand(); err != nil {
			logrus.Fatalf("failed to start hand: %v", err)
		}
		printEvents(g.Events())

		for g.State == engine.StateBetting || g.State == engine.StateDrawing {
			actor, ok := g.Table.SeatByPlayerID(humanPlayerID)
			isHuman := ok && actor.Number == g.CurrentActor

			var result engine.ActionResult
			if isHuman {
				kind, payload := cli.PromptForAction(g, humanPlayerID)
				result = g.PlayerAction(humanPlayerID, kind, payload)
			} else {
				seat := g.Table.Seats[g.CurrentActor]
				kind, payload := cli.CPUAction(g, seat.PlayerID, rnd)
				time.Sleep(300 * time.Millisecond)
				result = g.PlayerAction(seat.PlayerID, kind, payload)
			}

			if !result.Success {
				fmt.Printf("invalid action: %v\n", result.Error)
				continue
			}
			printEvents(result.Events)
		}

		cli.DisplayGameState(g, humanPlayerID, devMode)
		printHandResults(g)

		if humanEliminated(g) {
			fmt.Println("You have been eliminated. GAME OVER.")
			break
		}
		if remainingPlayers(g) <= 1 {
			fmt.Println("--- GAME OVER ---")
			break
		}

		fmt.Print("Press ENTER to start the next hand, or type 'q' to exit > ")
		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) == "q" {
			fmt.Println("Thanks for playing!")
			break
		}
	}
}

func printEvents(events []engine.Event) {
	for _, e := range events {
		switch e.Kind {
		case engine.EventAction:
			fmt.Printf("%s %s %s\n", e.ActorID, e.Action, util.FormatNumber(e.Amount))
		case engine.EventForcedBet:
			fmt.Printf("%s posts %s\n", e.ActorID, util.FormatNumber(e.Amount))
		}
	}
}

func printHandResults(g *engine.Game) {
	results, err := g.HandResults()
	if err != nil || results == nil {
		return
	}
	fmt.Println("--- POT DISTRIBUTION ---")
	for _, pr := range results.Pots {
		fmt.Printf("pot #%d (%s): %s wins %s", pr.PotIndex, pr.ConfigName, strings.Join(pr.Winners, ", "), util.FormatNumber(pr.Amount))
		if pr.Description != "" {
			fmt.Printf(" with %s", pr.Description)
		}
		fmt.Println()
	}
	fmt.Println("------------------------")
}

func humanEliminated(g *engine.Game) bool {
	seat, ok := g.Table.SeatByPlayerID(humanPlayerID)
	return ok && seat.Chips <= 0
}

func remainingPlayers(g *engine.Game) int {
	n := 0
	for _, s := range g.Table.OccupiedSeats() {
		if s.Chips > 0 {
			n++
		}
	}
	return n
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pokerctl",
	Short: "Starts a new game of poker",
	Long:  `Starts a new game of poker against CPU opponents, driven by a declarative rules/*.yml variant document.`,
	Run:   runGame,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&ruleStr, "rule", "r", "rules/holdem.yml", "Path to the rules document to play.")
	rootCmd.Flags().IntVarP(&numPlayers, "players", "p", 6, "Total seats at the table, one human plus the rest CPU.")
	rootCmd.Flags().IntVar(&buyIn, "buyin", 30000, "Starting chip stack per seat.")
	rootCmd.Flags().BoolVar(&devMode, "dev", false, "Enable development mode for verbose logging.")
}
