// Command gobdump reads a gob value stream from a file or from stdin
// and prints each decoded message, one per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yobol/gobwire"
)

func main() {
	verbose := flag.Bool("v", false, "log decode progress at debug level")
	maxSeg := flag.Int("max-segment", 64<<20, "reject any segment or element count declaring more than this many bytes/elements (0 disables the check)")
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	if err := run(flag.Args(), logger, *maxSeg); err != nil {
		fmt.Fprintln(os.Stderr, "gobdump:", err)
		os.Exit(1)
	}
}

func run(args []string, logger *logrus.Logger, maxSeg int) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	sess := gobwire.NewSession(
		gobwire.SetSessionLogger(logger),
		gobwire.SetMaxSegmentLength(maxSeg),
	)
	for result := range sess.Stream(data) {
		if result.Err != nil {
			return result.Err
		}
		fmt.Println(result.Value.String())
	}
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return readFile(args[0])
}
