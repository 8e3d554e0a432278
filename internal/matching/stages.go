package matching

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/jonathan/resume-matcher/internal/types"
)

// stringSet tracks normalized strings consumed within or across stages.
type stringSet map[string]struct{}

func (s stringSet) has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s stringSet) add(key string) {
	s[key] = struct{}{}
}

// findExactMatches intersects the normalized strings of both lists. Each
// distinct normalized string yields exactly one match, pairing the first
// resume element and the first job element that carry it; duplicate entries
// sharing a normalized string collapse into that single match. The returned
// set holds every normalized string claimed by this stage.
func findExactMatches(resume, job []types.NormalizedKeyword) ([]types.Match, stringSet) {
	firstJob := make(map[string]*types.NormalizedKeyword, len(job))
	for i := range job {
		if _, seen := firstJob[job[i].Normalized]; !seen {
			firstJob[job[i].Normalized] = &job[i]
		}
	}

	matches := []types.Match{}
	consumed := stringSet{}

	for i := range resume {
		rkw := &resume[i]
		jkw, ok := firstJob[rkw.Normalized]
		if !ok || consumed.has(rkw.Normalized) {
			continue
		}

		matches = append(matches, types.Match{
			ResumeKeyword:    rkw.Original,
			JobKeyword:       jkw.Original,
			NormalizedResume: rkw.Normalized,
			NormalizedJob:    jkw.Normalized,
			MatchType:        types.MatchExact,
			Confidence:       1.0,
			Weight:           ExactWeight,
			ResumeImportance: rkw.Importance,
			JobImportance:    jkw.Importance,
		})
		consumed.add(rkw.Normalized)
	}

	return matches, consumed
}

// findFuzzyMatches greedily pairs remaining resume keywords with their best
// job keyword by similarity ratio. All instances sharing an exactly-matched
// normalized string are excluded on BOTH sides. Resume candidates are
// visited in list order; for each, the highest-ratio unconsumed job
// candidate at or above the threshold wins, with strict greater-than
// comparison so the first-encountered candidate keeps ties. A pairing
// consumes both normalized strings for the rest of this stage.
func findFuzzyMatches(resume, job []types.NormalizedKeyword, exact stringSet, threshold int) ([]types.Match, stringSet, stringSet) {
	matches := []types.Match{}
	usedResume := stringSet{}
	usedJob := stringSet{}

	for i := range resume {
		rkw := &resume[i]
		if exact.has(rkw.Normalized) || usedResume.has(rkw.Normalized) {
			continue
		}

		bestRatio := 0
		var best *types.NormalizedKeyword
		for j := range job {
			jkw := &job[j]
			if exact.has(jkw.Normalized) || usedJob.has(jkw.Normalized) {
				continue
			}

			ratio := fuzzy.Ratio(rkw.Normalized, jkw.Normalized)
			if ratio > bestRatio && ratio >= threshold {
				bestRatio = ratio
				best = jkw
			}
		}

		if best == nil {
			continue
		}

		matches = append(matches, types.Match{
			ResumeKeyword:    rkw.Original,
			JobKeyword:       best.Original,
			NormalizedResume: rkw.Normalized,
			NormalizedJob:    best.Normalized,
			MatchType:        types.MatchFuzzy,
			Confidence:       float64(bestRatio) / 100.0,
			Weight:           FuzzyWeight,
			ResumeImportance: rkw.Importance,
			JobImportance:    best.Importance,
		})
		usedResume.add(rkw.Normalized)
		usedJob.add(best.Normalized)
	}

	return matches, usedResume, usedJob
}

// findPartialMatches pairs leftovers by substring containment or word-set
// overlap. The resume side excludes exact and fuzzy-resume consumption; the
// job side excludes only exact consumption. Fuzzy job-side consumption is
// deliberately NOT excluded here, matching long-standing behavior that
// downstream consumers depend on. First qualifying job candidate wins.
func findPartialMatches(resume, job []types.NormalizedKeyword, exact, fuzzyResume stringSet) []types.Match {
	matches := []types.Match{}
	usedResume := stringSet{}
	usedJob := stringSet{}

	for i := range resume {
		rkw := &resume[i]
		if exact.has(rkw.Normalized) || fuzzyResume.has(rkw.Normalized) || usedResume.has(rkw.Normalized) {
			continue
		}

		for j := range job {
			jkw := &job[j]
			if exact.has(jkw.Normalized) || usedJob.has(jkw.Normalized) {
				continue
			}
			if !isPartialMatch(rkw.Normalized, jkw.Normalized) {
				continue
			}

			matches = append(matches, types.Match{
				ResumeKeyword:    rkw.Original,
				JobKeyword:       jkw.Original,
				NormalizedResume: rkw.Normalized,
				NormalizedJob:    jkw.Normalized,
				MatchType:        types.MatchPartial,
				Confidence:       PartialConfidence,
				Weight:           PartialWeight,
				ResumeImportance: rkw.Importance,
				JobImportance:    jkw.Importance,
			})
			usedResume.add(rkw.Normalized)
			usedJob.add(jkw.Normalized)
			break
		}
	}

	return matches
}

// isPartialMatch reports whether two normalized keywords relate by substring
// containment or by word-set overlap of at least half the smaller set.
func isPartialMatch(keyword1, keyword2 string) bool {
	if strings.Contains(keyword1, keyword2) || strings.Contains(keyword2, keyword1) {
		return true
	}

	words1 := toWordSet(keyword1)
	words2 := toWordSet(keyword2)
	if len(words1) == 0 || len(words2) == 0 {
		return false
	}

	overlap := 0
	for word := range words1 {
		if _, ok := words2[word]; ok {
			overlap++
		}
	}

	smaller := len(words1)
	if len(words2) < smaller {
		smaller = len(words2)
	}

	return float64(overlap) >= 0.5*float64(smaller)
}

func toWordSet(keyword string) stringSet {
	set := stringSet{}
	for _, word := range strings.Fields(keyword) {
		set.add(word)
	}
	return set
}

// findMissingKeywords collects every job keyword instance whose normalized
// string was claimed by no tier. The original job list is walked without
// deduplication, so duplicate unmatched entries each appear in the result.
func findMissingKeywords(job []types.NormalizedKeyword, exact, fuzzyMatches, partialMatches []types.Match) []types.MissingKeyword {
	matched := stringSet{}
	for _, m := range exact {
		matched.add(m.NormalizedJob)
	}
	for _, m := range fuzzyMatches {
		matched.add(m.NormalizedJob)
	}
	for _, m := range partialMatches {
		matched.add(m.NormalizedJob)
	}

	missing := []types.MissingKeyword{}
	for i := range job {
		jkw := &job[i]
		if matched.has(jkw.Normalized) {
			continue
		}
		missing = append(missing, types.MissingKeyword{
			Keyword:    jkw.Original,
			Normalized: jkw.Normalized,
			Importance: jkw.Importance,
			Type:       jkw.Type,
		})
	}

	return missing
}
