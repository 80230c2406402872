package solvers

import (
	"fmt"
	"sort"
	"strings"
)

func init() {
	register(23, day23)
}

// day23 finds the largest set of computers that are all connected to each other, and
// returns their names sorted and joined with commas.
func day23(input string) (string, error) {
	links := make(map[string]map[string]bool)
	link := func(a, b string) {
		if links[a] == nil {
			links[a] = make(map[string]bool)
		}
		links[a][b] = true
	}
	for _, line := range lines(input) {
		a, b, ok := strings.Cut(strings.TrimSpace(line), "-")
		if !ok || a == "" || b == "" {
			return "", fmt.Errorf("invalid link %q", line)
		}
		link(a, b)
		link(b, a)
	}
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)

	var best []string
	better := func(clique []string) bool {
		if len(clique) != len(best) {
			return len(clique) > len(best)
		}
		return strings.Join(clique, ",") < strings.Join(best, ",")
	}
	// Bron-Kerbosch, with candidates kept in name order so that cliques are built sorted.
	var expand func(clique, candidates, excluded []string)
	expand = func(clique, candidates, excluded []string) {
		if len(candidates) == 0 && len(excluded) == 0 {
			if best == nil || better(clique) {
				best = append([]string(nil), clique...)
			}
			return
		}
		if len(clique)+len(candidates) < len(best) {
			return
		}
		for i, v := range candidates {
			var nextCand, nextExcl []string
			for _, w := range candidates[i+1:] {
				if links[v][w] {
					nextCand = append(nextCand, w)
				}
			}
			for _, w := range excluded {
				if links[v][w] {
					nextExcl = append(nextExcl, w)
				}
			}
			expand(append(clique, v), nextCand, nextExcl)
			excluded = append(excluded, v)
		}
	}
	expand(nil, names, nil)
	return strings.Join(best, ","), nil
}
