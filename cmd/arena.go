package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/speakup/internal/arena"
	"github.com/spf13/cobra"
)

var arenaCmd = &cobra.Command{
	Use:   "arena [attack...]",
	Short: "Play pet arena rounds from the command line",
	Long: `Pick a pet with --pet and play one round per attack argument
(fire, water or earth). Rounds are logged but never scored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pet, _ := cmd.Flags().GetString("pet")
		return playArena(cmd, arena.NewGame(nil), pet, args)
	},
}

func init() {
	names := make([]string, len(arena.Pets))
	for i, p := range arena.Pets {
		names[i] = string(p)
	}
	arenaCmd.Flags().String("pet", "", "Your pet: "+strings.Join(names, ", "))
}

// attackNames accepts English attack names alongside the in-game ones.
var attackNames = map[string]arena.Attack{
	"fire":  arena.Fire,
	"water": arena.Water,
	"earth": arena.Earth,
}

func playArena(cmd *cobra.Command, g *arena.Game, pet string, attacks []string) error {
	out := cmd.OutOrStdout()
	if err := arena.SelectPet(g, strings.ToLower(pet)); err != nil {
		if errors.Is(err, arena.ErrNoPetSelected) {
			return fmt.Errorf("select a pet with --pet")
		}
		return err
	}
	fmt.Fprintf(out, "Your pet %s faces %s\n", g.PlayerPet, g.EnemyPet)

	for _, a := range attacks {
		attack, ok := attackNames[strings.ToLower(a)]
		if !ok {
			attack, ok = arena.ParseAttack(strings.ToUpper(a))
		}
		if !ok {
			return fmt.Errorf("%w: %q", arena.ErrUnknownAttack, a)
		}
		line, err := arena.PlayAttack(g, attack)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
