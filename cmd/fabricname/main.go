// Command fabricname prints the names that the netlist writers give to the
// parts of an FPGA fabric.
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// execute runs the command line. Naming contract violations panic; they are
// turned into errors here so that the exit handlers still run.
func execute(args []string, out io.Writer) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if entry, ok := r.(*log.Entry); ok {
			err = fmt.Errorf("%s", entry.Message)
			return
		}

		err = fmt.Errorf("%v", r)
	}()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)

	return rootCmd.Execute()
}
