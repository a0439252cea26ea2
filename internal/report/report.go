package report

import (
	"fmt"
	"strings"

	"github.com/olehluchkiv/zoointake/internal/census"
)

const (
	title          = "Zoo Animal Intake Report"
	titleRule      = "========================"
	speciesRule    = "------"
	characteristic = " - "
)

// Plural appends "s" to a species name. No attempt is made at real
// English plurals.
func Plural(species string) string {
	return species + "s"
}

// Render produces the intake report text for a census.
func Render(c *census.Census) string {
	var b strings.Builder

	b.WriteString(title + "\n")
	b.WriteString(titleRule + "\n\n")

	for _, g := range c.Groups {
		writeGroup(&b, g)
	}

	b.WriteString(fmt.Sprintf("Total animals: %d\n", c.Total()))
	return b.String()
}

// writeGroup writes one species section followed by a blank line.
func writeGroup(b *strings.Builder, g census.Group) {
	b.WriteString(Plural(g.Species) + ":\n")
	b.WriteString(speciesRule + "\n")
	for _, a := range g.Animals {
		b.WriteString(fmt.Sprintf("%s, %d years old", a.Name, a.Age))
		if a.HasCharacteristic() {
			b.WriteString(characteristic + a.SpecialCharacteristic())
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Total %s: %d\n\n", Plural(g.Species), g.Count()))
}
