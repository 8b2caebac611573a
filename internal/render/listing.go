package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/vk/argscope/internal/catalog"
)

// nameColumn is where wrapped descriptions start.
const nameColumn = 28

// Listing writes the options of a catalog in registration order, recursing
// into command sub-catalogs. Descriptions wrap at the given width.
func Listing(w io.Writer, c *catalog.Catalog, width uint) error {
	return listingLevel(w, c, width, 0)
}

func listingLevel(w io.Writer, c *catalog.Catalog, width uint, depth int) error {
	indent := strings.Repeat(indentStep, depth)

	for _, def := range c.Options() {
		name := formatName(def)
		if err := writeEntry(w, indent, name, def.Description, width); err != nil {
			return err
		}
		if def.Kind == catalog.KindCommand {
			if err := listingLevel(w, def.Sub(), width, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatName(def *catalog.Definition) string {
	switch def.Kind {
	case catalog.KindCommand:
		return def.Name
	case catalog.KindFlag, catalog.KindKeyValue:
		name := "--" + def.Name
		if def.Abbrev != 0 {
			name += ", -" + string(def.Abbrev)
		}
		if def.Kind == catalog.KindKeyValue {
			name += " <value>"
			if def.Default != "" {
				name += fmt.Sprintf(" (default %q)", def.Default)
			}
		}
		return name
	default:
		return def.Name
	}
}

func writeEntry(w io.Writer, indent, name, desc string, width uint) error {
	if desc == "" {
		_, err := fmt.Fprintf(w, "%s%s\n", indent, name)
		return err
	}

	descWidth := int(width) - nameColumn
	if descWidth < 16 {
		descWidth = 16
	}
	lines := strings.Split(wordwrap.WrapString(desc, uint(descWidth)), "\n")

	head := fmt.Sprintf("%s%s", indent, name)
	if len(head) < nameColumn {
		head += strings.Repeat(" ", nameColumn-len(head))
	} else {
		head += "\n" + strings.Repeat(" ", nameColumn)
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", head, lines[0]); err != nil {
		return err
	}
	for _, line := range lines[1:] {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", nameColumn), line); err != nil {
			return err
		}
	}
	return nil
}
