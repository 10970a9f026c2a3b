// Command genling prints words generated from a YAML language definition.
//
//	genling --file toki.yaml --count 20 --seed 7
//
// Flags fall back to GENLING_FILE, GENLING_COUNT, and GENLING_SEED, read from
// the environment or a .env file. APP_ENV, LOG_LEVEL, and LOG_FORMAT configure
// logging, which goes to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/genling/pkg/config"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newApp(cfg).Run(os.Args); err != nil {
		os.Exit(1)
	}
}
