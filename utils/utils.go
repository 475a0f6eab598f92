package utils

// Matching of what people type against tables of names

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// smash upper-cases in and turns everything but letters and digits into '_', so "fort orange",
// "FORT_ORANGE" and "Fort-Orange" all come out the same
func smash(in string) string {
	return strings.Map(func(c rune) rune {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return unicode.ToUpper(c)
		}
		return '_'
	}, in)
}

// match levels, most exact first.  The first level with any match decides.
var levels = []func(typed string, name string) bool{
	func(t, n string) bool { return t == n },
	strings.EqualFold,
	func(t, n string) bool { return smash(t) == smash(n) },
	func(t, n string) bool { return strings.HasPrefix(smash(n), smash(t)) },
	func(t, n string) bool { return strings.Contains(smash(n), smash(t)) },
}

// Fuzzy_lookup finds the key whose name typed stands for.  what names the kind of thing being
// looked for, for errors.  The matched name is returned too, since it can differ from typed.
func Fuzzy_lookup[K cmp.Ordered](names map[K]string, typed string, what string) (K, string, error) {
	var none K
	keys := slices.Sorted(maps.Keys(names))

	for _, match := range levels {
		found := []K{}
		for _, k := range keys {
			if match(typed, names[k]) {
				found = append(found, k)
			}
		}
		switch len(found) {
		case 0:
			continue
		case 1:
			return found[0], names[found[0]], nil
		}
		candidates := []string{}
		for _, k := range found {
			candidates = append(candidates, names[k])
		}
		slices.Sort(candidates)
		return none, "", fmt.Errorf("Ambiguous argument: %v could be anything from {%v}", typed, strings.Join(candidates, ", "))
	}
	return none, "", fmt.Errorf("%v could not be matched to a valid value for %v", typed, what)
}

// Fuzzy_enum matches typed against a name table indexed by raw value, as the tables package keeps
// them, and gives back the typed value
func Fuzzy_enum[E ~uint8](table []string, typed string, what string) (E, string, error) {
	names := make(map[E]string, len(table))
	for i, name := range table {
		names[E(i)] = name
	}
	return Fuzzy_lookup(names, typed, what)
}

// Fuzzy_choice picks one of a list of words
func Fuzzy_choice(choices []string, typed string, what string) (string, error) {
	names := make(map[int]string, len(choices))
	for i, c := range choices {
		names[i] = c
	}
	_, matched, err := Fuzzy_lookup(names, typed, what)
	return matched, err
}
