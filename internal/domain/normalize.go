package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal whitespace runs.
// It is used for trip, activity and profile name normalization.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeList trims every entry and drops empty ones. A nil input stays nil.
func NormalizeList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := NormalizeHumanName(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
