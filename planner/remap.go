package planner

// ColorSwap records one source-to-target color substitution.
type ColorSwap struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// VariantMapping maps family name -> size -> color swap. It is handed to
// the order store's copy operation, which resolves (family, size, target
// color) to a concrete product at the destination location.
type VariantMapping map[string]map[string]ColorSwap

// FamilyRemap is the caller's color choice for one family on the copy path.
type FamilyRemap struct {
	SourceColor     string   `json:"sourceColor"`
	TargetColor     string   `json:"targetColor"`
	AvailableColors []string `json:"availableColors"`
}

// SourceLine is one line item of the order being copied.
type SourceLine struct {
	Family string `json:"family"`
	Color  string `json:"color"`
	Size   string `json:"size"`
}

// BuildVariantMapping builds the substitution table for an order copy.
// Every source line matching a family's chosen source color contributes an
// entry for its size. Families with at most one available target color, or
// with "keep same" chosen, are omitted entirely (identity assumed).
func BuildVariantMapping(lines []SourceLine, remaps map[string]FamilyRemap) VariantMapping {
	mapping := make(VariantMapping)
	for _, line := range lines {
		remap, ok := remaps[line.Family]
		if !ok {
			continue
		}
		if len(remap.AvailableColors) <= 1 {
			continue
		}
		if remap.TargetColor == "" || remap.TargetColor == remap.SourceColor {
			continue
		}
		if line.Color != remap.SourceColor {
			continue
		}

		sizes := mapping[line.Family]
		if sizes == nil {
			sizes = make(map[string]ColorSwap)
			mapping[line.Family] = sizes
		}
		sizes[line.Size] = ColorSwap{From: remap.SourceColor, To: remap.TargetColor}
	}
	return mapping
}
