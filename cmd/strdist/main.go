// ------------------------------------------------------
// Strdist
// A string distance calculator written by bitquark
// ------------------------------------------------------
// Docs and code: https://github.com/bitquark/strdist
// ------------------------------------------------------

package main

import (
	"github.com/bitquark/strdist/pkg/strdist"
)

func main() {
	strdist.Run()
}
