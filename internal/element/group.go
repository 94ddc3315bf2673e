package element

import "slices"

// Group associates elements that move together under drag. Membership is
// independent of selection.
type Group struct {
	ID         string   `json:"id"`
	ElementIDs []string `json:"elementIds"`
	CreatedAt  int64    `json:"createdAt"`
}

func (g Group) Has(id string) bool {
	return slices.Contains(g.ElementIDs, id)
}

func (g Group) Clone() Group {
	g.ElementIDs = slices.Clone(g.ElementIDs)
	return g
}

// Cohesive expands ids with every member of every group that shares a
// member with the set, transitively across overlapping groups. The result
// keeps the order of first appearance.
func Cohesive(ids []string, groups []Group) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	add := func(id string) bool {
		if seen[id] {
			return false
		}
		seen[id] = true
		out = append(out, id)
		return true
	}
	for _, id := range ids {
		add(id)
	}
	for changed := true; changed; {
		changed = false
		for _, g := range groups {
			if !slices.ContainsFunc(g.ElementIDs, func(id string) bool { return seen[id] }) {
				continue
			}
			for _, id := range g.ElementIDs {
				if add(id) {
					changed = true
				}
			}
		}
	}
	return out
}
