package data

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyKind holds static data for one hostile type loaded from YAML.
type EnemyKind struct {
	Kind   string  `yaml:"kind"`
	Speed  float64 `yaml:"speed"`  // world units per second
	Weight int     `yaml:"weight"` // relative spawn chance
}

type enemyListFile struct {
	Enemies []EnemyKind `yaml:"enemies"`
}

// DefaultEnemy is used when no table is loaded or every weight is zero.
var DefaultEnemy = EnemyKind{Kind: "drifter", Speed: 40, Weight: 1}

// EnemyTable holds all hostile kinds in file order.
type EnemyTable struct {
	kinds       []EnemyKind
	byKind      map[string]int
	totalWeight int
}

// NewEnemyTable builds a table from in-memory kinds. Entries with an empty
// name, a negative weight or a negative speed are rejected.
func NewEnemyTable(kinds []EnemyKind) (*EnemyTable, error) {
	t := &EnemyTable{
		kinds:  make([]EnemyKind, 0, len(kinds)),
		byKind: make(map[string]int, len(kinds)),
	}
	for i, k := range kinds {
		if k.Kind == "" {
			return nil, fmt.Errorf("enemy entry %d: missing kind", i)
		}
		if k.Weight < 0 {
			return nil, fmt.Errorf("enemy %q: negative weight %d", k.Kind, k.Weight)
		}
		if k.Speed < 0 || math.IsNaN(k.Speed) || math.IsInf(k.Speed, 0) {
			return nil, fmt.Errorf("enemy %q: bad speed %v", k.Kind, k.Speed)
		}
		if _, dup := t.byKind[k.Kind]; dup {
			return nil, fmt.Errorf("enemy %q: duplicate kind", k.Kind)
		}
		t.byKind[k.Kind] = len(t.kinds)
		t.kinds = append(t.kinds, k)
		t.totalWeight += k.Weight
	}
	return t, nil
}

// Get returns the kind by name.
func (t *EnemyTable) Get(kind string) (EnemyKind, bool) {
	if t == nil {
		return EnemyKind{}, false
	}
	i, ok := t.byKind[kind]
	if !ok {
		return EnemyKind{}, false
	}
	return t.kinds[i], true
}

// Count returns the number of hostile kinds.
func (t *EnemyTable) Count() int {
	if t == nil {
		return 0
	}
	return len(t.kinds)
}

// Pick draws a kind by weight. A nil or weightless table yields DefaultEnemy.
func (t *EnemyTable) Pick(r *rand.Rand) EnemyKind {
	if t == nil || t.totalWeight <= 0 {
		return DefaultEnemy
	}
	n := r.Intn(t.totalWeight)
	upto := 0
	for _, k := range t.kinds {
		if upto+k.Weight > n {
			return k
		}
		upto += k.Weight
	}
	return t.kinds[len(t.kinds)-1]
}

// LoadEnemyTable loads hostile kinds from a YAML file.
func LoadEnemyTable(path string) (*EnemyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read enemy_list: %w", err)
	}
	var f enemyListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse enemy_list: %w", err)
	}
	t, err := NewEnemyTable(f.Enemies)
	if err != nil {
		return nil, fmt.Errorf("enemy_list %s: %w", path, err)
	}
	return t, nil
}
