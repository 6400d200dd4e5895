// Package menu implements the main-screen action menu.
//
// A Model holds a fixed, ordered list of items and the index of the highlighted
// one. Exactly one item is selected at any time. Navigation wraps in both
// directions, so moving past the last item lands on the first and vice versa.
//
// Items store only their base label. The label shown on screen is derived from
// the base label and the selection flag: the selected item is prefixed with a
// marker, every other item is shown bare. Decorate and Strip are exposed for
// renderers that receive labels from elsewhere; both are idempotent and Strip
// only removes an exact leading marker.
//
// # Usage Example
//
//	m, err := menu.Default(menu.DefaultMarker)
//	if err != nil {
//	    return err
//	}
//	m.SelectNext()
//	item, _ := m.Current()
//	fmt.Println(item.Action, m.DisplayLabels())
package menu
