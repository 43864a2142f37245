package hero

import (
	"testing"

	"github.com/lawnchairsociety/herobattle/internal/ability"
	"github.com/lawnchairsociety/herobattle/internal/dice"
)

func TestNewHero(t *testing.T) {
	h := New("Athena", 120)

	if h.Name() != "Athena" {
		t.Errorf("Name() = %q, want %q", h.Name(), "Athena")
	}
	if h.CurrentHealth() != 120 || h.StartingHealth() != 120 {
		t.Errorf("health = %d/%d, want 120/120", h.CurrentHealth(), h.StartingHealth())
	}
	if h.Kills() != 0 || h.Deaths() != 0 {
		t.Errorf("tallies = %d/%d, want 0/0", h.Kills(), h.Deaths())
	}
	if h.HasAbilities() {
		t.Error("new hero should have no abilities")
	}
}

func TestAttackWithoutAbilities(t *testing.T) {
	h := New("Nobody", 100)
	for i := 0; i < 20; i++ {
		if got := h.Attack(); got != 0 {
			t.Fatalf("Attack() = %d, want 0", got)
		}
	}
	if got := h.Defend(); got != 0 {
		t.Errorf("Defend() = %d, want 0", got)
	}
}

func TestAttackSumsEveryAbility(t *testing.T) {
	h := New("Thor", 100)
	h.SetSource(dice.Max{})
	h.AddAbility(ability.NewAbility("Lightning", 30))
	h.AddWeapon(ability.NewWeapon("Hammer", 50))

	if got := h.Attack(); got != 80 {
		t.Errorf("Attack() = %d, want 80", got)
	}

	h.SetSource(dice.Min{})
	// Basic floor 0, weapon floor 25.
	if got := h.Attack(); got != 25 {
		t.Errorf("Attack() = %d, want 25", got)
	}
}

func TestAttackRange(t *testing.T) {
	h := New("Loki", 100)
	h.AddAbility(ability.NewAbility("Trick", 10))
	h.AddWeapon(ability.NewWeapon("Dagger", 20))
	for i := 0; i < 200; i++ {
		got := h.Attack()
		if got < 10 || got > 30 {
			t.Errorf("Attack() = %d, expected 10-30", got)
		}
	}
}

func TestDefendSumsEveryArmor(t *testing.T) {
	h := New("Tank", 100)
	h.SetSource(dice.Max{})
	h.AddArmor(ability.NewArmor("Helmet", 5))
	h.AddArmor(ability.NewArmor("Shield", 15))

	if got := h.Defend(); got != 20 {
		t.Errorf("Defend() = %d, want 20", got)
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name       string
		block      int // armor max; Max source blocks exactly this
		damage     int
		wantHealth int
		wantDealt  int
	}{
		{"no armor", 0, 30, 70, 30},
		{"partial block", 10, 30, 80, 20},
		{"full block", 40, 30, 100, 0},
		{"zero damage", 10, 0, 100, 0},
		{"overkill", 0, 250, -150, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New("Target", 100)
			h.SetSource(dice.Max{})
			if tt.block > 0 {
				h.AddArmor(ability.NewArmor("Plate", tt.block))
			}
			dealt := h.TakeDamage(tt.damage)
			if dealt != tt.wantDealt {
				t.Errorf("TakeDamage(%d) = %d, want %d", tt.damage, dealt, tt.wantDealt)
			}
			if h.CurrentHealth() != tt.wantHealth {
				t.Errorf("health = %d, want %d", h.CurrentHealth(), tt.wantHealth)
			}
		})
	}
}

func TestTakeDamageNeverHeals(t *testing.T) {
	h := New("Target", 100)
	h.AddArmor(ability.NewArmor("Shield", 50))
	prev := h.CurrentHealth()
	for i := 0; i < 200; i++ {
		dealt := h.TakeDamage(i % 40)
		if h.CurrentHealth() > prev {
			t.Fatalf("health rose from %d to %d", prev, h.CurrentHealth())
		}
		if prev-h.CurrentHealth() != dealt {
			t.Fatalf("health dropped %d, TakeDamage reported %d", prev-h.CurrentHealth(), dealt)
		}
		prev = h.CurrentHealth()
	}
}

func TestDefenseRolledPerHit(t *testing.T) {
	src := dice.NewScripted()
	h := New("Target", 100)
	h.SetSource(src)
	h.AddArmor(ability.NewArmor("Shield", 10))
	h.AddArmor(ability.NewArmor("Cape", 10))

	h.TakeDamage(5)
	h.TakeDamage(5)
	h.TakeDamage(5)

	if src.Calls() != 6 {
		t.Errorf("armor rolls = %d, want 6 (two armors, three hits)", src.Calls())
	}
}

func TestIsAlive(t *testing.T) {
	tests := []struct {
		damage int
		alive  bool
	}{
		{0, true},
		{99, true},
		{100, false},
		{150, false},
	}

	for _, tt := range tests {
		h := New("Hero", 100)
		h.TakeDamage(tt.damage)
		if h.IsAlive() != tt.alive {
			t.Errorf("after %d damage IsAlive() = %v, want %v", tt.damage, h.IsAlive(), tt.alive)
		}
	}
}

func TestTallies(t *testing.T) {
	h := New("Hero", 100)
	h.AddKill(1)
	h.AddKill(2)
	h.AddDeaths(1)

	if h.Kills() != 3 {
		t.Errorf("Kills() = %d, want 3", h.Kills())
	}
	if h.Deaths() != 1 {
		t.Errorf("Deaths() = %d, want 1", h.Deaths())
	}
}

func TestRevive(t *testing.T) {
	for _, damage := range []int{0, 1, 60, 100, 400} {
		h := New("Phoenix", 100)
		h.TakeDamage(damage)
		h.AddDeaths(1)
		h.Revive()
		if h.CurrentHealth() != 100 {
			t.Errorf("after %d damage and Revive health = %d, want 100", damage, h.CurrentHealth())
		}
		if h.Deaths() != 1 {
			t.Errorf("Revive changed deaths to %d", h.Deaths())
		}
	}
}

func TestAbilitiesReturnsCopy(t *testing.T) {
	h := New("Hero", 100)
	h.AddAbility(ability.NewAbility("Punch", 5))
	list := h.Abilities()
	list[0] = nil
	if h.Abilities()[0] == nil {
		t.Error("Abilities() exposed the internal slice")
	}
}
