package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/vk/argscope/internal/catalog"
	"github.com/vk/argscope/internal/scope"
)

const indentStep = "  "

// Text writes an indented view of the scope tree: one line per command,
// with the flags and values attached to its scope nested below it.
func Text(w io.Writer, t *scope.Tree, colored bool) error {
	return textNode(w, t.Root(), 0, colored)
}

func textNode(w io.Writer, n scope.Node, depth int, colored bool) error {
	indent := strings.Repeat(indentStep, depth)

	label := "(root)"
	if cmd, ok := n.Command(); ok {
		label = cmd.Name
		if colored {
			label = color.Cyan.Sprint(label)
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, label); err != nil {
		return err
	}

	for _, a := range n.Args() {
		var line string
		switch a.Kind {
		case catalog.KindFlag:
			line = "--" + a.Name
			if colored {
				line = color.Green.Sprint(line)
			}
		case catalog.KindKeyValue:
			name := "--" + a.Name
			if colored {
				name = color.Yellow.Sprint(name)
			}
			line = fmt.Sprintf("%s %s", name, a.Value)
		case catalog.KindCommand:
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, indentStep, line); err != nil {
			return err
		}
	}

	for _, child := range n.Children() {
		if err := textNode(w, child, depth+1, colored); err != nil {
			return err
		}
	}
	return nil
}

// treeJSON is the wire shape of one scope for JSON output.
type treeJSON struct {
	Command  string            `json:"command,omitempty"`
	Flags    []string          `json:"flags,omitempty"`
	Values   map[string]string `json:"values,omitempty"`
	Children []*treeJSON       `json:"children,omitempty"`
}

// JSON writes the scope tree plus its canonical token form as a single
// JSON document.
func JSON(w io.Writer, t *scope.Tree) error {
	doc := struct {
		Tokens []string  `json:"tokens"`
		Tree   *treeJSON `json:"tree"`
	}{
		Tokens: t.Tokens(),
		Tree:   jsonNode(t.Root()),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func jsonNode(n scope.Node) *treeJSON {
	out := &treeJSON{}
	if cmd, ok := n.Command(); ok {
		out.Command = cmd.Name
	}
	for _, a := range n.Args() {
		switch a.Kind {
		case catalog.KindFlag:
			out.Flags = append(out.Flags, a.Name)
		case catalog.KindKeyValue:
			if out.Values == nil {
				out.Values = make(map[string]string)
			}
			out.Values[a.Name] = a.Value
		case catalog.KindCommand:
		}
	}
	for _, child := range n.Children() {
		out.Children = append(out.Children, jsonNode(child))
	}
	return out
}
