package service

import (
	"sort"
	"strings"

	"github.com/uncleben006/invoice-agent/internal/product/model"
)

type candidate struct {
	rec   model.Record
	score float64
}

// Check looks the trimmed name up in the catalog. An exact (byte-for-byte)
// hit is returned first with score 1.0; remaining slots are filled by
// scoring every catalog entry, dropping those below threshold and ranking
// the rest by score descending. Never returns more than maxResults entries.
func (s *Service) Check(name string, maxResults int, threshold float64) (bool, []model.MatchResult, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return false, nil, nil
	}

	cat, err := s.Catalog()
	if err != nil {
		return false, nil, err
	}

	exact := false
	var results []model.MatchResult

	if rec, ok := cat.ByName(query); ok {
		exact = true
		results = append(results, toMatch(rec, 1.0, name))
		// only the exact hit was asked for, skip scoring the rest
		if maxResults == 1 {
			return exact, results, nil
		}
	}

	cands := make([]candidate, 0, len(cat.Records))
	for _, rec := range cat.Records {
		sc := Score(query, rec.Name)
		if sc >= threshold {
			cands = append(cands, candidate{rec: rec, score: sc})
		}
	}

	// stable keeps first-seen order on equal scores
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })
	if len(cands) > maxResults {
		cands = cands[:maxResults]
	}

	for _, c := range cands {
		if exact && c.rec.Name == query {
			continue // already placed first
		}
		if len(results) >= maxResults {
			break
		}
		results = append(results, toMatch(c.rec, c.score, name))
	}
	return exact, results, nil
}

func toMatch(rec model.Record, score float64, input string) model.MatchResult {
	return model.MatchResult{
		ID:            rec.ID,
		Name:          rec.Name,
		Unit:          rec.Unit,
		Currency:      rec.Currency,
		Price:         rec.Price,
		Score:         score,
		OriginalInput: input,
	}
}
