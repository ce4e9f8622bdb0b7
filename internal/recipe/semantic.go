package recipe

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
)

// semanticWeight and coverageWeight blend embedding similarity with
// ingredient coverage when semantic mode is active.
const (
	semanticWeight = 0.7
	coverageWeight = 0.3
)

// applySemanticScores replaces each result's score with
// 0.7*cosine(query, recipe ingredients) + 0.3*coverage. One embedding call
// covers the query and every candidate.
func (r *Retriever) applySemanticScores(ctx context.Context, query []string, results []domain.ScoredRecipe) error {
	if len(results) == 0 {
		return nil
	}

	texts := make([]string, 0, len(results)+1)
	texts = append(texts, strings.Join(query, " "))
	for _, res := range results {
		texts = append(texts, ingredientText(res.Recipe))
	}

	vectors, err := r.embed.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding candidates: %w", err)
	}
	if len(vectors) != len(texts) {
		return fmt.Errorf("embedding backend returned %d vectors for %d texts", len(vectors), len(texts))
	}

	queryVec := vectors[0]
	for i := range results {
		coverage := 0.0
		if total := len(results[i].Recipe.Parsed); total > 0 {
			coverage = float64(len(results[i].Matched)) / float64(total)
		}
		sim := cosineSimilarity(queryVec, vectors[i+1])
		results[i].Score = semanticWeight*sim + coverageWeight*coverage
	}
	return nil
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// 0 when either has zero magnitude or the dimensions differ.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
