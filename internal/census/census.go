package census

import (
	"sort"

	"github.com/olehluchkiv/zoointake/internal/animal"
)

// Group holds every animal sharing one species string, in arrival order.
type Group struct {
	Species string
	Animals []animal.Animal
}

// Count returns the number of animals in the group.
func (g Group) Count() int { return len(g.Animals) }

// Census is the grouped view of one intake run.
type Census struct {
	Groups []Group // ascending by Species
}

// Tally groups animals by their species string.
//
// Grouping is by the raw string, not by Kind: a Generic animal whose species
// reads "Lion" lands in the same group as classified lions.
func Tally(animals []animal.Animal) *Census {
	index := make(map[string]int)
	var groups []Group
	for _, a := range animals {
		i, ok := index[a.Species]
		if !ok {
			i = len(groups)
			index[a.Species] = i
			groups = append(groups, Group{Species: a.Species})
		}
		groups[i].Animals = append(groups[i].Animals, a)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Species < groups[j].Species
	})
	return &Census{Groups: groups}
}

// Counts returns species -> number of animals.
func (c *Census) Counts() map[string]int {
	counts := make(map[string]int, len(c.Groups))
	for _, g := range c.Groups {
		counts[g.Species] = g.Count()
	}
	return counts
}

// Total returns the number of animals across all groups.
func (c *Census) Total() int {
	n := 0
	for _, g := range c.Groups {
		n += g.Count()
	}
	return n
}
