package app

import (
	"fmt"
	"os"
)

func logErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
