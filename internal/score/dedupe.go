// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"strings"

	"github.com/pdiddy/notegen/pkg/types"
)

// similarityThreshold is the Jaccard word-set similarity above which two
// candidates count as near-duplicates.
const similarityThreshold = 0.7

// duplicatePenalty is subtracted from a near-duplicate's score, floored
// at zero.
const duplicatePenalty = 2

// Dedupe suppresses near-duplicate candidates in discovery order. Each
// candidate is compared against every already-accepted one; a similarity
// above 0.7 costs the fixed penalty, and the candidate survives only if
// its penalized score stays above zero. Duplicates decay softly rather
// than being hard-dropped.
func Dedupe(cands []types.Candidate) []types.Candidate {
	var accepted []types.Candidate
	for _, c := range cands {
		dup := false
		for _, a := range accepted {
			if Similarity(c.Text, a.Text) > similarityThreshold {
				dup = true
				break
			}
		}
		if dup {
			c.Score -= duplicatePenalty
			if c.Score < 0 {
				c.Score = 0
			}
			if c.Score == 0 {
				continue
			}
			c.Tags = append(c.Tags, "near-duplicate")
		}
		accepted = append(accepted, c)
	}
	return accepted
}

// Similarity computes Jaccard word-set similarity between two sentences:
// shared distinct lowercase words over total distinct words.
func Similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for w := range setA {
		if setB[w] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[strings.Trim(w, ".,!?;:\"'")] = true
	}
	delete(set, "")
	return set
}
