package hclcatalog

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/argscope/internal/catalog"
)

// commandBlock is one "command" block, nesting arbitrarily.
type commandBlock struct {
	Name        string          `hcl:"name,label"`
	Description string          `hcl:"description,optional"`
	Inheritable bool            `hcl:"inheritable,optional"`
	Commands    []*commandBlock `hcl:"command,block"`
	Flags       []*flagBlock    `hcl:"flag,block"`
	Options     []*optionBlock  `hcl:"option,block"`
}

// flagBlock is one boolean "flag" block.
type flagBlock struct {
	Name        string `hcl:"name,label"`
	Abbrev      string `hcl:"abbrev,optional"`
	Description string `hcl:"description,optional"`
	Inheritable bool   `hcl:"inheritable,optional"`
}

// optionBlock is one key/value "option" block. The default attribute is
// decoded as a cty value so manifests may write numbers or bools; it is
// converted to the option's string form here.
type optionBlock struct {
	Name        string    `hcl:"name,label"`
	Abbrev      string    `hcl:"abbrev,optional"`
	Description string    `hcl:"description,optional"`
	Inheritable bool      `hcl:"inheritable,optional"`
	Default     cty.Value `hcl:"default,optional"`
}

// translateLevel registers one nesting level's blocks into a builder, then
// recurses into command sub-builders. Registration order per level is
// flags, then options, then commands, matching the decoded block groups.
func translateLevel(b *catalog.Builder, flags []*flagBlock, options []*optionBlock, commands []*commandBlock) error {
	for _, f := range flags {
		abbrev, err := abbrevRune(f.Abbrev, f.Name)
		if err != nil {
			return err
		}
		err = b.Register(catalog.Definition{
			Name:        f.Name,
			Abbrev:      abbrev,
			Description: f.Description,
			Kind:        catalog.KindFlag,
			Inheritable: f.Inheritable,
		})
		if err != nil {
			return err
		}
	}

	for _, o := range options {
		abbrev, err := abbrevRune(o.Abbrev, o.Name)
		if err != nil {
			return err
		}
		def, err := defaultString(o.Default, o.Name)
		if err != nil {
			return err
		}
		err = b.Register(catalog.Definition{
			Name:        o.Name,
			Abbrev:      abbrev,
			Description: o.Description,
			Kind:        catalog.KindKeyValue,
			Inheritable: o.Inheritable,
			Default:     def,
		})
		if err != nil {
			return err
		}
	}

	for _, c := range commands {
		sub, err := b.Command(catalog.Definition{
			Name:        c.Name,
			Description: c.Description,
			Inheritable: c.Inheritable,
		})
		if err != nil {
			return err
		}
		if err := translateLevel(sub, c.Flags, c.Options, c.Commands); err != nil {
			return fmt.Errorf("command %q: %w", c.Name, err)
		}
	}

	return nil
}

func abbrevRune(abbrev, name string) (rune, error) {
	if abbrev == "" {
		return 0, nil
	}
	runes := []rune(abbrev)
	if len(runes) != 1 {
		return 0, fmt.Errorf("option %q: abbreviation %q must be a single character", name, abbrev)
	}
	return runes[0], nil
}

func defaultString(v cty.Value, name string) (string, error) {
	if v == cty.NilVal || v.IsNull() {
		return "", nil
	}
	converted, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("option %q: default is not convertible to string: %w", name, err)
	}
	return converted.AsString(), nil
}
