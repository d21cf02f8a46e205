package catalog

import "strings"

var apostropheReplacer = strings.NewReplacer("'", "", "’", "")

// NormalizeName folds a card or product name for matching: lower case,
// apostrophes stripped (ASCII and U+2019), surrounding whitespace trimmed.
// Two names are equal for matching purposes iff their normalized forms are.
func NormalizeName(name string) string {
	return strings.TrimSpace(apostropheReplacer.Replace(strings.ToLower(name)))
}

// ResolveProduct finds the best product for a free-text card name.
// Matching tiers, first tier with any hit wins:
//  1. clean name equals the target
//  2. raw name equals the target
//  3. clean name contains the target
//  4. raw name contains the target
//
// Within a tier the first candidate in input order is returned. A nil
// result means no match and is an expected outcome, not an error.
func ResolveProduct(name string, candidates []ProductWithPrice) *ProductWithPrice {
	target := NormalizeName(name)
	if target == "" {
		return nil
	}

	for i := range candidates {
		if NormalizeName(candidates[i].CleanName) == target {
			return &candidates[i]
		}
	}
	for i := range candidates {
		if NormalizeName(candidates[i].Name) == target {
			return &candidates[i]
		}
	}
	for i := range candidates {
		if strings.Contains(NormalizeName(candidates[i].CleanName), target) {
			return &candidates[i]
		}
	}
	for i := range candidates {
		if strings.Contains(NormalizeName(candidates[i].Name), target) {
			return &candidates[i]
		}
	}
	return nil
}

// ResolveCoverProduct picks a representative product for an entity by a
// contains-only match: the curated hint when present, otherwise the
// entity's own display name. Used for one-to-one cover images where an
// exact product name is not known.
func ResolveCoverProduct(hint, fallback string, candidates []ProductWithPrice) *ProductWithPrice {
	raw := hint
	if strings.TrimSpace(raw) == "" {
		raw = fallback
	}
	target := NormalizeName(raw)
	if target == "" {
		return nil
	}

	for i := range candidates {
		if strings.Contains(NormalizeName(candidates[i].CleanName), target) {
			return &candidates[i]
		}
	}
	for i := range candidates {
		if strings.Contains(NormalizeName(candidates[i].Name), target) {
			return &candidates[i]
		}
	}
	return nil
}
