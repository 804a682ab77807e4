// Command optipoly runs the optimum-polynomial scan against the
// degree-10 alternating-power sequence 1 - n + n² - … + n¹⁰ and prints
// the sum of the first incorrect terms of its bad fits.
//
// Per-order progress goes to stderr as structured console logs; the
// final sum is the single line on stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/optipoly/optimum"
)

func main() {
	order := flag.Int("order", optimum.DefaultOrder, "number of prefix fits (k = 1..order)")
	degree := flag.Int("degree", 10, "degree of the alternating-power reference sequence")
	parallel := flag.Bool("parallel", false, "fit the orders on separate goroutines")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log := zerolog.New(output).With().Timestamp().Logger()

	if *degree < 0 {
		log.Fatal().Int("degree", *degree).Msg("degree must be >= 0")
	}

	opts := optimum.DefaultOptions()
	opts.Order = *order
	opts.Parallel = *parallel
	u := optimum.AlternatingPower(*degree)

	log.Info().
		Int("order", opts.Order).
		Int("degree", *degree).
		Bool("parallel", opts.Parallel).
		Msg("scanning for bad optimum polynomials")

	fits, err := optimum.Fits(context.Background(), u, opts)
	if err != nil {
		// Deterministic computation: any failure means malformed input,
		// not a transient condition. Fatal at startup, no retry.
		log.Fatal().Err(err).Msg("scan failed")
	}

	var sum int64
	for _, f := range fits {
		sum += f.Value
		log.Info().
			Int("order", f.Order).
			Int64("first_incorrect_term", f.Term).
			Int64("value", f.Value).
			Msg("bad fit")
	}

	fmt.Println(sum)
}
