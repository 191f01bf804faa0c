// Package knowledge holds the related-skills graph used to give partial
// credit for skills that are adjacent to a job requirement rather than an
// exact match. The graph is built once from a static category table and is
// safe for concurrent reads.
package knowledge

import "strings"

// Entry is the lookup result for one skill: the category it belongs to and
// the skills considered related to it
type Entry struct {
	Category      string   `json:"category"`
	RelatedSkills []string `json:"related_skills"`
}

// Graph indexes every category and skill name (lowercased) to its Entry
type Graph struct {
	index map[string]Entry
	// keys preserves insertion order so substring lookups resolve
	// deterministically
	keys []string
}

// NewGraph builds the graph from the built-in category table. A skill's
// related set is every other skill in its category plus the category name;
// a category's related set is all of its member skills.
func NewGraph() *Graph {
	g := &Graph{index: make(map[string]Entry)}
	for _, cat := range skillCategories {
		g.add(cat.Name, Entry{Category: cat.Name, RelatedSkills: cat.Skills})
		for _, skill := range cat.Skills {
			related := make([]string, 0, len(cat.Skills))
			for _, s := range cat.Skills {
				if s != skill {
					related = append(related, s)
				}
			}
			related = append(related, cat.Name)
			g.add(skill, Entry{Category: cat.Name, RelatedSkills: related})
		}
	}
	return g
}

func (g *Graph) add(name string, e Entry) {
	key := strings.ToLower(name)
	if _, ok := g.index[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.index[key] = e
}

// Lookup resolves a skill name case-insensitively. Exact matches win; failing
// that, the first indexed key (in table order) that contains the query or is
// contained by it is returned. Unknown skills get category "Unknown" and an
// empty related set.
func (g *Graph) Lookup(name string) Entry {
	key := strings.ToLower(name)
	if e, ok := g.index[key]; ok {
		return e
	}
	for _, k := range g.keys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return g.index[k]
		}
	}
	return Entry{Category: "Unknown", RelatedSkills: []string{}}
}

// Len returns the number of indexed names, categories included
func (g *Graph) Len() int {
	return len(g.keys)
}
