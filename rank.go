package skim

// RankTable maps a canonical sentence key to that sentence's aggregate
// intersection score against every other sentence in the content. Tables
// are built once per summarization and read-only afterward.
type RankTable map[string]int

// CollisionMode controls what happens when two distinct sentences
// canonicalize to the same rank-table key.
type CollisionMode int

const (
	// CollisionOverwrite keeps the score of the last colliding sentence,
	// in segmentation order. This is the default.
	CollisionOverwrite CollisionMode = iota

	// CollisionSum accumulates the scores of all colliding sentences.
	CollisionSum

	// CollisionError fails with ECONFLICT on the first collision.
	CollisionError
)

// Ranker builds rank tables. The zero value uses overwrite-on-collision
// semantics, matching RankSentences.
type Ranker struct {
	OnCollision CollisionMode
}

// Rank scores every sentence in content against every other sentence and
// returns the per-sentence aggregate table keyed by canonical key.
// Self-pairs are skipped. Comparisons are quadratic in the number of
// sentences, each linear in sentence length.
func (r Ranker) Rank(content string) (RankTable, error) {
	sentences := SplitSentences(content)

	table := make(RankTable, len(sentences))
	for i, sentence := range sentences {
		score := 0
		for j, other := range sentences {
			if i == j {
				continue
			}
			score += IntersectionScore(sentence, other)
		}

		key := CanonicalKey(sentence)
		if _, exists := table[key]; exists {
			switch r.OnCollision {
			case CollisionSum:
				table[key] += score
				continue
			case CollisionError:
				return nil, Errorf(ECONFLICT, "sentence %q collides with an earlier sentence on key %q", sentence, key)
			}
		}
		table[key] = score
	}

	return table, nil
}

// RankSentences builds the rank table for content using the default
// overwrite-on-collision semantics. Zero or one sentence yields an empty
// or single-zero-score table; this is not an error.
func RankSentences(content string) RankTable {
	table, _ := Ranker{}.Rank(content)
	return table
}
