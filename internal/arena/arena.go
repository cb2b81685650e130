// Package arena implements the pet turn-selection game: the player picks a
// pet, the opponent picks one at random, and every attack is answered by a
// random enemy attack and logged.
package arena

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrNoPetSelected is returned when the player confirms without a valid pet.
var ErrNoPetSelected = errors.New("select a pet")

// ErrUnknownAttack is returned for attacks outside the fixed set.
var ErrUnknownAttack = errors.New("unknown attack")

// Pet is a playable creature.
type Pet string

// Pets, in the order they are numbered by RandomInt.
const (
	Hipodoge  Pet = "hipodoge"
	Capipepo  Pet = "capipepo"
	Ratigueya Pet = "ratigueya"
)

// Pets lists every pet in draw order.
var Pets = []Pet{Hipodoge, Capipepo, Ratigueya}

// Attack is an elemental move.
type Attack string

// Attacks, in the order they are numbered by RandomInt.
const (
	Fire  Attack = "FUEGO"
	Water Attack = "AGUA"
	Earth Attack = "TIERRA"
)

// Attacks lists every attack in draw order.
var Attacks = []Attack{Fire, Water, Earth}

// Intn is the slice of math/rand/v2 the game needs.
type Intn interface {
	IntN(n int) int
}

// Game holds one match. The zero value is not usable; call NewGame.
type Game struct {
	rng Intn

	PlayerPet    Pet
	EnemyPet     Pet
	PlayerAttack Attack
	EnemyAttack  Attack
	Log          []string
}

// NewGame starts a match drawing from rng. A nil rng uses a fresh
// PCG-seeded source.
func NewGame(rng Intn) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Game{rng: rng}
}

// RandomInt returns an integer in [lo, hi], both inclusive.
func RandomInt(rng Intn, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// ParsePet returns the pet named s, if any.
func ParsePet(s string) (Pet, bool) {
	for _, p := range Pets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// ParseAttack returns the attack named s, if any.
func ParseAttack(s string) (Attack, bool) {
	for _, a := range Attacks {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// SelectPet records the player's pet and draws the enemy pet. An empty or
// unknown pet leaves the game untouched.
func SelectPet(g *Game, pet string) error {
	p, ok := ParsePet(pet)
	if !ok {
		return ErrNoPetSelected
	}
	g.PlayerPet = p
	g.EnemyPet = Pets[RandomInt(g.rng, 1, len(Pets))-1]
	return nil
}

// PlayAttack records the player's attack, draws the enemy's answer and
// appends the round to the log.
func PlayAttack(g *Game, attack Attack) (string, error) {
	if _, ok := ParseAttack(string(attack)); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAttack, attack)
	}
	g.PlayerAttack = attack
	g.EnemyAttack = Attacks[RandomInt(g.rng, 1, len(Attacks))-1]

	line := Message(g.PlayerAttack, g.EnemyAttack)
	g.Log = append(g.Log, line)
	return line, nil
}

// Message formats one round. Rounds are never scored, so every line ends as
// pending.
func Message(player, enemy Attack) string {
	return fmt.Sprintf("Your pet attacked with %s, the enemy pet attacked with %s - pending", player, enemy)
}
