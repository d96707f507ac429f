package service

import (
	"FishLog/internal/cli/model"
	"sort"
)

// CatchStats: сводка по коллекции уловов.
type CatchStats struct {
	TotalCatches   int
	TotalLengthCm  float64
	TotalWeightG   float64
	UniqueSpecies  int
	BySpecies      []SpeciesCount // по убыванию количества, затем по id
	LongestCatchID string
}

type SpeciesCount struct {
	Species string
	Count   int
}

// TotalWeightKg возвращает суммарный вес в килограммах.
func (s CatchStats) TotalWeightKg() float64 { return s.TotalWeightG / 1000 }

// ComputeStats считает сводку; отсутствующие длина и вес считаются нулём.
func ComputeStats(list []model.Catch) CatchStats {
	st := CatchStats{TotalCatches: len(list)}
	counts := map[string]int{}
	longest := -1.0
	for _, c := range list {
		if c.LengthCm != nil {
			st.TotalLengthCm += *c.LengthCm
			if *c.LengthCm > longest {
				longest = *c.LengthCm
				st.LongestCatchID = c.ID
			}
		}
		if c.WeightGrams != nil {
			st.TotalWeightG += *c.WeightGrams
		}
		counts[c.Species]++
	}
	st.UniqueSpecies = len(counts)
	st.BySpecies = make([]SpeciesCount, 0, len(counts))
	for sp, n := range counts {
		st.BySpecies = append(st.BySpecies, SpeciesCount{Species: sp, Count: n})
	}
	sort.Slice(st.BySpecies, func(i, j int) bool {
		if st.BySpecies[i].Count != st.BySpecies[j].Count {
			return st.BySpecies[i].Count > st.BySpecies[j].Count
		}
		return st.BySpecies[i].Species < st.BySpecies[j].Species
	})
	return st
}

// Stats считает сводку по текущей коллекции в памяти.
func (s *CatchService) Stats() CatchStats {
	return ComputeStats(s.Catches())
}
