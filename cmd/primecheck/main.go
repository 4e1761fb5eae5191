//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command primecheck reports whether an arbitrary-precision decimal
// number is prime. Arbitrary-precision candidates are screened by
// bigint trial division against a small fixed base of primes; once a
// candidate's magnitude fits in an int64 it is handed to
// otiai10/primes for a definitive answer. A candidate that survives
// trial division but does not fit in an int64 is reported as prime
// without a definitive check.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/markkurossi/bigint"
	"github.com/otiai10/primes"
)

// smallPrimes is the trial-division base used to reject obviously
// composite candidates before falling back to otiai10/primes.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: primecheck <n>")
	}

	n, err := bigint.ParseDecimal(flag.Arg(0))
	if err != nil {
		log.Fatalf("primecheck: %v", err)
	}

	prime, reason := isPrime(n)
	fmt.Printf("%s: prime=%v (%s)\n", n.Text(), prime, reason)
}

func isPrime(n *bigint.Int) (bool, string) {
	if n.Cmp(bigint.NewInt(2)) < 0 {
		return false, "less than 2"
	}

	for _, p := range smallPrimes {
		pb := bigint.NewInt(p)
		if n.Cmp(pb) == 0 {
			return true, "matches small prime base"
		}
		r, err := n.Mod(pb)
		if err != nil {
			log.Fatalf("primecheck: %v", err)
		}
		if r.Sign() == 0 {
			return false, fmt.Sprintf("divisible by %d", p)
		}
	}

	i, err := strconv.ParseInt(n.Text(), 10, 64)
	if err != nil {
		// Survived trial division but too large to hand to
		// otiai10/primes; report as a probable prime.
		return true, "survived trial division, magnitude exceeds int64"
	}
	return primes.Factorize(i).IsPrime(), "checked via otiai10/primes"
}
