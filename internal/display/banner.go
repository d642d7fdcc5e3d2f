package display

import (
	"fmt"
	"os"

	"github.com/backmassage/streamsweep/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Purple if colors are enabled.
func PrintBanner() {
	if term.Purple != "" {
		fmt.Fprint(os.Stdout, term.Purple)
	}
	fmt.Fprint(os.Stdout, ` ____  _                            ____
/ ___|| |_ _ __ ___  __ _ _ __ ___ / ___|_      _____  ___ _ __
\___ \| __| '__/ _ \/ _`+"`"+` | '_ `+"`"+` _ \\___ \ \ /\ / / _ \/ _ \ '_ \
 ___) | |_| | |  __/ (_| | | | | | |___) \ V  V /  __/  __/ |_) |
|____/ \__|_|  \___|\__,_|_| |_| |_|____/ \_/\_/ \___|\___| .__/
                                                          |_|
`)
	if term.Purple != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
