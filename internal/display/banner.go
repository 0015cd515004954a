package display

import (
	"fmt"
	"os"
)

// PrintBanner prints the startup banner; cyan when colors are enabled.
func PrintBanner(color bool) {
	if color {
		fmt.Fprint(os.Stdout, "\033[1;96m")
	}
	fmt.Fprint(os.Stdout, `  __           _                  _ _ _
 / _| __ _ ___| |_ __ _ ___ _ __ | (_) |_
| |_ / _`+"`"+` |/ __| __/ _`+"`"+` / __| '_ \| | | __|
|  _| (_| \__ \ || (_| \__ \ |_) | | | |_
|_|  \__,_|___/\__\__,_|___/ .__/|_|_|\__|
                           |_|
`)
	if color {
		fmt.Fprint(os.Stdout, "\033[0m")
	}
	fmt.Fprintln(os.Stdout)
}
