// Package species содержит встроенный справочник видов рыб.
package species

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

type Category string

const (
	Freshwater Category = "freshwater"
	Saltwater  Category = "saltwater"
	Both       Category = "both"
	All        Category = "all"
)

type Species struct {
	ID          string   `json:"id"`
	SwedishName string   `json:"swedishName"`
	LatinName   string   `json:"latinName"`
	Category    Category `json:"category"`
	MinSizeCm   *int     `json:"minSizeCm,omitempty"`
}

//go:embed species.json
var rawSpecies []byte

type Registry struct {
	list []Species
	byID map[string]int
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default возвращает реестр из встроенной таблицы.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Load(rawSpecies)
		if err != nil {
			panic(fmt.Sprintf("species: embedded table is broken: %v", err))
		}
		defaultReg = reg
	})
	return defaultReg
}

// Load разбирает JSON-таблицу видов. Пустые и повторяющиеся id считаются ошибкой.
func Load(raw []byte) (*Registry, error) {
	var arr []Species
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fmt.Errorf("decode species: %w", err)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("species list is empty")
	}

	byID := make(map[string]int, len(arr))
	for i, s := range arr {
		if s.ID == "" {
			return nil, fmt.Errorf("missing id at index %d", i)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate id %q", s.ID)
		}
		switch s.Category {
		case Freshwater, Saltwater, Both:
		default:
			return nil, fmt.Errorf("unknown category %q for %q", s.Category, s.ID)
		}
		byID[s.ID] = i
	}
	return &Registry{list: arr, byID: byID}, nil
}

func (r *Registry) All() []Species {
	out := make([]Species, len(r.list))
	copy(out, r.list)
	return out
}

func (r *Registry) Get(id string) (Species, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Species{}, false
	}
	return r.list[i], true
}

// Name возвращает шведское название вида; подходит как SpeciesNamer для представлений.
func (r *Registry) Name(id string) (string, bool) {
	s, ok := r.Get(id)
	if !ok {
		return "", false
	}
	return s.SwedishName, true
}

// ByCategory фильтрует по категории. Для freshwater и saltwater
// в выдачу попадают и виды категории both.
func (r *Registry) ByCategory(cat Category) []Species {
	if cat == All || cat == "" {
		return r.All()
	}
	out := make([]Species, 0)
	for _, s := range r.list {
		if s.Category == cat || (cat != Both && s.Category == Both) {
			out = append(out, s)
		}
	}
	return out
}

// Search ищет подстроку без учёта регистра в шведском и латинском названии.
func (r *Registry) Search(query string) []Species {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Species, 0)
	for _, s := range r.list {
		if strings.Contains(strings.ToLower(s.SwedishName), q) ||
			strings.Contains(strings.ToLower(s.LatinName), q) {
			out = append(out, s)
		}
	}
	return out
}
