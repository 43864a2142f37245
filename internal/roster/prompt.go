package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/herobattle/internal/ability"
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/hero"
	"github.com/lawnchairsociety/herobattle/internal/team"
)

// ErrInputClosed is returned when the input ends before a team is complete.
var ErrInputClosed = errors.New("input closed")

// Prompter builds teams by asking a player for every hero's name and
// capabilities, one line at a time.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	src dice.Source
}

// NewPrompter reads answers from r and writes prompts to w.
func NewPrompter(r io.Reader, w io.Writer, src dice.Source) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w, src: src}
}

// BuildTeam asks how many heroes to make and creates each of them.
func (p *Prompter) BuildTeam(name string) (*team.Team, error) {
	fmt.Fprintf(p.out, "Building %s\n", name)
	count, err := p.askInt("How many heroes do you want to make (number): ")
	if err != nil {
		return nil, err
	}

	t := team.New(name)
	for i := 0; i < count; i++ {
		h, err := p.CreateHero()
		if err != nil {
			return nil, fmt.Errorf("%s hero %d: %w", name, i+1, err)
		}
		t.AddHero(h)
	}
	return t, nil
}

// CreateHero prompts for a hero with one ability, one weapon and one armor.
func (p *Prompter) CreateHero() (*hero.Hero, error) {
	name, err := p.ask("Enter a Hero name: ")
	if err != nil {
		return nil, err
	}
	h := hero.New(name, hero.DefaultStartingHealth)
	h.SetSource(p.src)

	abilityName, abilityMax, err := p.askCapability("an Ability", "max power")
	if err != nil {
		return nil, err
	}
	h.AddAbility(ability.NewAbility(abilityName, abilityMax))

	weaponName, weaponMax, err := p.askCapability("a Weapon", "max power")
	if err != nil {
		return nil, err
	}
	h.AddWeapon(ability.NewWeapon(weaponName, weaponMax))

	armorName, armorMax, err := p.askCapability("an Armor", "max block")
	if err != nil {
		return nil, err
	}
	h.AddArmor(ability.NewArmor(armorName, armorMax))

	return h, nil
}

// PlayAgain asks whether to run another battle. Only "n" (any case) or a
// closed input stops the replay loop.
func (p *Prompter) PlayAgain() bool {
	answer, err := p.ask("Play Again? Y or N: ")
	if err != nil {
		return false
	}
	return strings.ToLower(answer) != "n"
}

func (p *Prompter) askCapability(label, strength string) (string, int, error) {
	name, err := p.ask(fmt.Sprintf("Enter %s name: ", label))
	if err != nil {
		return "", 0, err
	}
	kind := strings.TrimPrefix(strings.TrimPrefix(label, "an "), "a ")
	value, err := p.askInt(fmt.Sprintf("Enter the %s's %s (number): ", kind, strength))
	if err != nil {
		return "", 0, err
	}
	return name, value, nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askInt repeats the prompt until it gets a non-negative whole number.
func (p *Prompter) askInt(prompt string) (int, error) {
	for {
		answer, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number of zero or more.")
	}
}
