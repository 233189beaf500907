/*
Package dropdown provides Box, a single-line text field with a popup of
clickable suggestions, for the immediate-mode gui package.

	var country string

	func draw(ctx *gui.Context) {
	    resp := dropdown.FromSlice(countries, "country", &country, dropdown.Selectable).
	        TextProperties(func(te gui.TextEdit) gui.TextEdit {
	            return te.HintText("Country")
	        }).
	        SelectOnFocus(true).
	        Show(ctx)
	    if resp.ValueChanged {
	        fmt.Println("picked", country)
	    }
	}

Each frame the field is drawn first. When it gains focus the popup opens
(and, with SelectOnFocus, the text is selected). While the popup is open
the suggestions are listed below the field in source order; with
FilterByInput (the default) only those matching the current text are
listed. Clicking one writes its text to the buffer, closes the popup and
sets ValueChanged on the returned response. If several are clicked in one
frame the last one wins.

The Box keeps no state of its own. Focus and popup visibility live in
gui.Memory and the cursor in the gui state store, keyed by IDs derived
from the seed passed to the constructor.
*/
package dropdown
