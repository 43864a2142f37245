package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/herobattle/internal/ability"
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/hero"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rosters.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const twoTeams = `
teams:
  - name: Team One
    heroes:
      - name: Wonder Woman
        abilities:
          - name: Lasso
            max: 40
          - name: Tiara
            max: 30
            kind: weapon
        weapons:
          - name: Sword
            max: 60
        armors:
          - name: Bracelets
            max: 30
      - name: Batman
        health: 80
        weapons:
          - name: Batarang
            max: 25
  - name: Team Two
    heroes:
      - name: Joker
        abilities:
          - name: Gas
            max: 50
`

func TestLoadFromYAML(t *testing.T) {
	file, err := LoadFromYAML(writeRoster(t, twoTeams))
	if err != nil {
		t.Fatalf("LoadFromYAML returned error: %v", err)
	}

	if len(file.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(file.Teams))
	}
	if file.Teams[0].Name != "Team One" || len(file.Teams[0].Heroes) != 2 {
		t.Errorf("first team = %+v", file.Teams[0])
	}
}

func TestBuildPair(t *testing.T) {
	file, err := LoadFromYAML(writeRoster(t, twoTeams))
	if err != nil {
		t.Fatalf("LoadFromYAML returned error: %v", err)
	}

	one, two, err := file.BuildPair(dice.Max{})
	if err != nil {
		t.Fatalf("BuildPair returned error: %v", err)
	}

	heroes := one.Heroes()
	ww := heroes[0]
	if ww.Name() != "Wonder Woman" || ww.StartingHealth() != hero.DefaultStartingHealth {
		t.Errorf("Wonder Woman = %s/%d", ww.Name(), ww.StartingHealth())
	}
	abilities := ww.Abilities()
	if len(abilities) != 3 {
		t.Fatalf("Wonder Woman abilities = %d, want 3", len(abilities))
	}
	if abilities[1].Kind() != ability.KindWeapon || abilities[2].Kind() != ability.KindWeapon {
		t.Errorf("kinds = %s, %s; want weapon, weapon", abilities[1].Kind(), abilities[2].Kind())
	}
	// Max source: 40 + 30 + 60.
	if got := ww.Attack(); got != 130 {
		t.Errorf("Wonder Woman Attack() = %d, want 130", got)
	}
	if got := ww.Defend(); got != 30 {
		t.Errorf("Wonder Woman Defend() = %d, want 30", got)
	}
	if heroes[1].StartingHealth() != 80 {
		t.Errorf("Batman health = %d, want 80", heroes[1].StartingHealth())
	}
	if two.Name() != "Team Two" || two.Size() != 1 {
		t.Errorf("second team = %s/%d", two.Name(), two.Size())
	}
}

func TestBuildPairWrongTeamCount(t *testing.T) {
	file, err := LoadFromYAML(writeRoster(t, "teams:\n  - name: Lonely\n"))
	if err != nil {
		t.Fatalf("LoadFromYAML returned error: %v", err)
	}
	if _, _, err := file.BuildPair(nil); !errors.Is(err, ErrTeamCount) {
		t.Errorf("BuildPair error = %v, want ErrTeamCount", err)
	}
}

func TestLoadFromYAMLValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing team name",
			content: "teams:\n  - heroes: []\n",
			wantErr: ErrMissingName,
		},
		{
			name:    "missing hero name",
			content: "teams:\n  - name: A\n    heroes:\n      - health: 10\n",
			wantErr: ErrMissingName,
		},
		{
			name:    "negative strength",
			content: "teams:\n  - name: A\n    heroes:\n      - name: B\n        armors:\n          - name: C\n            max: -1\n",
			wantErr: ErrInvalidStrength,
		},
		{
			name:    "unknown kind",
			content: "teams:\n  - name: A\n    heroes:\n      - name: B\n        abilities:\n          - name: C\n            max: 1\n            kind: spell\n",
			wantErr: ability.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromYAML(writeRoster(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadFromYAML error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromYAMLNegativeHealth(t *testing.T) {
	_, err := LoadFromYAML(writeRoster(t, "teams:\n  - name: A\n    heroes:\n      - name: B\n        health: -5\n"))
	if err == nil {
		t.Fatal("expected error for negative health")
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromYAMLBadSyntax(t *testing.T) {
	if _, err := LoadFromYAML(writeRoster(t, "teams: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}
