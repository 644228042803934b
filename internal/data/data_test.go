package data

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fuelrun/jerrycan/internal/input"
)

func TestEnemyTablePickFollowsWeights(t *testing.T) {
	tbl, err := NewEnemyTable([]EnemyKind{
		{Kind: "never", Speed: 1, Weight: 0},
		{Kind: "common", Speed: 2, Weight: 9},
		{Kind: "rare", Speed: 3, Weight: 1},
	})
	if err != nil {
		t.Fatalf("NewEnemyTable: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[tbl.Pick(r).Kind]++
	}
	if counts["never"] != 0 {
		t.Fatalf("zero-weight kind picked %d times", counts["never"])
	}
	if counts["common"] < 8500 || counts["rare"] < 700 {
		t.Fatalf("skewed picks: %v", counts)
	}
}

func TestEnemyTableFallbacks(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var nilTable *EnemyTable
	if got := nilTable.Pick(r); got != DefaultEnemy {
		t.Fatalf("nil table picked %+v", got)
	}
	if nilTable.Count() != 0 {
		t.Fatal("nil table count")
	}
	empty, _ := NewEnemyTable(nil)
	if got := empty.Pick(r); got != DefaultEnemy {
		t.Fatalf("empty table picked %+v", got)
	}
}

func TestEnemyTableRejectsBadEntries(t *testing.T) {
	cases := [][]EnemyKind{
		{{Kind: "", Weight: 1}},
		{{Kind: "a", Weight: -1}},
		{{Kind: "a", Speed: -50, Weight: 1}},
		{{Kind: "a", Weight: 1}, {Kind: "a", Weight: 2}},
	}
	for i, c := range cases {
		if _, err := NewEnemyTable(c); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestLoadShippedEnemyTable(t *testing.T) {
	path := filepath.Join("..", "..", "data", "yaml", "enemy_list.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("shipped table not found: %v", err)
	}
	tbl, err := LoadEnemyTable(path)
	if err != nil {
		t.Fatalf("LoadEnemyTable: %v", err)
	}
	if tbl.Count() == 0 {
		t.Fatal("no kinds loaded")
	}
	if _, ok := tbl.Get("drifter"); !ok {
		t.Fatal("drifter missing")
	}
}

func TestReplayStepsExpandPressAsEdge(t *testing.T) {
	src := `
seed: 3
dt: 10ms
frames:
  - repeat: 2
    hold: [boost]
  - repeat: 3
    press: [fire]
    dt: 20ms
  - {}
`
	r, err := ParseReplay([]byte(src))
	if err != nil {
		t.Fatalf("ParseReplay: %v", err)
	}
	steps := r.Steps()
	if len(steps) != 6 {
		t.Fatalf("got %d steps, want 6", len(steps))
	}
	if !steps[0].Input.Held(input.Boost) || steps[0].DT != 10*time.Millisecond {
		t.Fatalf("step 0 = %+v", steps[0])
	}
	if !steps[2].Input.JustPressed(input.Fire) || steps[2].DT != 20*time.Millisecond {
		t.Fatalf("step 2 = %+v", steps[2])
	}
	if steps[3].Input.JustPressed(input.Fire) || !steps[3].Input.Held(input.Fire) {
		t.Fatalf("step 3 should hold fire without the edge: %s", steps[3].Input)
	}
	if !steps[5].Input.Empty() {
		t.Fatalf("step 5 = %s, want empty", steps[5].Input)
	}
}

func TestReplayRejectsUnknownAction(t *testing.T) {
	src := "dt: 10ms\nframes:\n  - hold: [jump]\n"
	if _, err := ParseReplay([]byte(src)); err == nil {
		t.Fatal("expected error")
	}
}

func TestReplayRequiresDT(t *testing.T) {
	if _, err := ParseReplay([]byte("frames: []\n")); err == nil {
		t.Fatal("expected error")
	}
}
