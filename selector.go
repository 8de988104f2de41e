package gateway

// choice is one named member of a set of mutually exclusive options.
type choice struct {
	name  string
	value string
}

// pickOne returns the single non-empty choice, or a *SelectorError naming
// the group when zero or several are set.
func pickOne(selector string, choices ...choice) (choice, error) {
	var picked []choice
	options := make([]string, 0, len(choices))
	for _, c := range choices {
		options = append(options, c.name)
		if c.value != "" {
			picked = append(picked, c)
		}
	}

	if len(picked) == 1 {
		return picked[0], nil
	}

	selected := make([]string, 0, len(picked))
	for _, c := range picked {
		selected = append(selected, c.name)
	}
	return choice{}, &SelectorError{Selector: selector, Options: options, Selected: selected}
}
