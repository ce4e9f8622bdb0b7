// Package respond renders reply descriptors into user-facing text. The
// engine decides WHAT to say (a kind plus data); this package decides HOW
// to phrase it, so the wording can change without touching conversation
// logic.
package respond

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
)

// Renderer turns a Reply into a phrase, picking one of several template
// variants per kind so repeated replies do not read identically.
type Renderer struct {
	rng       *rand.Rand
	templates map[domain.ReplyKind][]string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithSeed makes variant selection deterministic.
func WithSeed(seed int64) Option {
	return func(r *Renderer) { r.rng = rand.New(rand.NewSource(seed)) }
}

// New creates a renderer with the built-in template catalog.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		rng:       rand.New(rand.NewSource(rand.Int63())),
		templates: templateCatalog(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const fallbackLine = "I'm not sure how to answer that. Say 'help' to see what I can do."

// Render produces the text for one reply. Unknown kinds get a generic
// fallback rather than an error; a conversation should never dead-end.
func (r *Renderer) Render(reply *domain.Reply) string {
	if reply == nil {
		return fallbackLine
	}
	variants, ok := r.templates[reply.Kind]
	if !ok || len(variants) == 0 {
		return fallbackLine
	}
	tmpl := variants[r.rng.Intn(len(variants))]

	// Later result pages keep their numbering so "pick number 6" still
	// refers to the sixth suggestion.
	if reply.Kind == domain.ReplyMoreRecipes {
		if results, ok := reply.Data["results"].([]domain.ScoredRecipe); ok {
			if offset, ok := reply.Data["offset"].(int); ok {
				tmpl = strings.Replace(tmpl, "{results}", formatResults(results, offset), 1)
			}
		}
	}
	return fill(tmpl, reply.Data)
}

// fill substitutes {key} tokens with formatted data values.
func fill(tmpl string, data map[string]any) string {
	pairs := make([]string, 0, 2*len(data))
	for key, value := range data {
		pairs = append(pairs, "{"+key+"}", formatValue(key, value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func formatValue(key string, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		if key == "ratio" {
			return formatRatio(v)
		}
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	case []string:
		return joinList(v)
	case []domain.ScoredRecipe:
		return formatResults(v, 0)
	case *domain.Recipe:
		return formatRecipe(v)
	case []domain.SubstitutionEntry:
		return formatOptions(v)
	case []domain.Substitution:
		return formatSubstitutions(v)
	case []domain.Ingredient:
		return formatIngredients(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// joinList renders "a", "a and b", "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func formatRatio(ratio float64) string {
	if ratio == 1.0 {
		return "the same amount"
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", ratio), "0"), ".") + " times the amount"
}

// formatResults renders a numbered suggestion list. The offset shifts the
// numbering for "show more" pages so references stay stable.
func formatResults(results []domain.ScoredRecipe, offset int) string {
	var b strings.Builder
	for i, sr := range results {
		fmt.Fprintf(&b, "\n  %d. %s", offset+i+1, sr.Recipe.Name)
		if len(sr.Recipe.Parsed) > 0 {
			fmt.Fprintf(&b, " (you have %d of %d ingredients)", len(sr.Matched), len(sr.Recipe.Parsed))
		}
		if len(sr.Missing) > 0 {
			fmt.Fprintf(&b, " - missing: %s", joinList(sr.Missing))
		}
	}
	return b.String()
}

func formatRecipe(r *domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", r.Name)
	if r.Minutes > 0 {
		fmt.Fprintf(&b, " (about %d minutes)", r.Minutes)
	}
	b.WriteString("\nIngredients:")
	for _, line := range r.Ingredients {
		fmt.Fprintf(&b, "\n  - %s", line)
	}
	b.WriteString("\nSteps:")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, step)
	}
	return b.String()
}

func formatOptions(entries []domain.SubstitutionEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "\n  - %s (%s)", e.Substitute, formatRatio(e.Ratio))
		if e.Notes != "" {
			fmt.Fprintf(&b, " - %s", e.Notes)
		}
	}
	return b.String()
}

func formatSubstitutions(subs []domain.Substitution) string {
	var b strings.Builder
	for _, s := range subs {
		fmt.Fprintf(&b, "\n  - %s instead of %s", s.Substitute, s.Original)
	}
	return b.String()
}

func formatIngredients(ings []domain.Ingredient) string {
	var b strings.Builder
	for _, ing := range ings {
		b.WriteString("\n  - ")
		if ing.Quantity != "" {
			b.WriteString(ing.Quantity)
			b.WriteString(" ")
		}
		b.WriteString(ing.Name)
	}
	return b.String()
}
