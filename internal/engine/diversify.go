package engine

import "sort"

// diversify selects up to k candidates using greedy maximal marginal
// relevance over type-tag Jaccard similarity, then re-sorts the selected
// set by score descending so the response ordering contract holds.
//
// MMR = lambda*score - (1-lambda)*max(sim to already selected). With
// lambda 1.0 this degenerates to plain truncation. The pass is
// deterministic: candidates are visited in their existing (stable-sorted)
// order and ties keep the earlier candidate.
func diversify(candidates []candidate, k int, lambda float64) []candidate {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}
	if k > len(candidates) {
		k = len(candidates)
	}
	if lambda >= 1.0 {
		return candidates[:k]
	}

	selected := make([]candidate, 0, k)
	taken := make(map[int]struct{}, k)

	for len(selected) < k {
		bestIdx := -1
		bestMMR := 0.0

		for i, c := range candidates {
			if _, ok := taken[i]; ok {
				continue
			}

			maxSim := 0.0
			for _, s := range selected {
				if sim := jaccardSimilarity(c.place.Types, s.place.Types); sim > maxSim {
					maxSim = sim
				}
			}

			mmr := lambda*c.score - (1-lambda)*maxSim
			if bestIdx < 0 || mmr > bestMMR {
				bestMMR = mmr
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			break
		}
		selected = append(selected, candidates[bestIdx])
		taken[bestIdx] = struct{}{}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].score > selected[j].score
	})
	return selected
}
