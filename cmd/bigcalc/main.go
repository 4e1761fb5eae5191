//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command bigcalc is an arbitrary-precision calculator built on the
// bigint package. It reads one operation per line, either from
// stdin or from a -f script file, and prints a table of the
// evaluated operations using markkurossi/tabulate.
//
// Each line has the form:
//
//	op a b
//
// where op is one of add, sub, mul, quo, rem, mod, and, or, xor,
// shl, shr, cmp, and a, b are decimal (or 0b-prefixed binary)
// integers. The shift operations (shl, shr) take the shift count as b.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/bigint"
	"github.com/markkurossi/tabulate"
)

func main() {
	script := flag.String("f", "", "script file (defaults to stdin)")
	flag.Parse()

	in := os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			log.Fatalf("bigcalc: %v", err)
		}
		defer f.Close()
		in = f
	}

	tab := tabulate.New(tabulate.Unicode)
	tab.Header("op")
	tab.Header("a")
	tab.Header("b")
	tab.Header("result")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := evalLine(line)
		if err != nil {
			log.Fatalf("bigcalc: %s: %v", line, err)
		}
		row.AddTo(tab)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("bigcalc: %v", err)
	}

	tab.Print(os.Stdout)
}

type result struct {
	op, a, b, val string
}

func (r result) AddTo(tab *tabulate.Tabulate) {
	row := tab.Row()
	row.Column(r.op)
	row.Column(r.a)
	row.Column(r.b)
	row.Column(r.val)
}

func evalLine(line string) (result, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return result{}, fmt.Errorf("expected 'op a b', got %q", line)
	}
	op, as, bs := fields[0], fields[1], fields[2]

	a, err := parse(as)
	if err != nil {
		return result{}, fmt.Errorf("a: %v", err)
	}
	b, err := parse(bs)
	if err != nil {
		return result{}, fmt.Errorf("b: %v", err)
	}

	var val string
	switch op {
	case "add":
		val = a.Add(b).Text()
	case "sub":
		val = a.Sub(b).Text()
	case "mul":
		val = a.Mul(b).Text()
	case "quo":
		q, _, err := a.QuoRem(b)
		if err != nil {
			return result{}, err
		}
		val = q.Text()
	case "rem":
		_, r, err := a.QuoRem(b)
		if err != nil {
			return result{}, err
		}
		val = r.Text()
	case "mod":
		r, err := a.Mod(b)
		if err != nil {
			return result{}, err
		}
		val = r.Text()
	case "and":
		val = a.And(b).Text()
	case "or":
		val = a.Or(b).Text()
	case "xor":
		val = a.Xor(b).Text()
	case "shl":
		r, err := a.Lsh(b)
		if err != nil {
			return result{}, err
		}
		val = r.Text()
	case "shr":
		r, err := a.Rsh(b)
		if err != nil {
			return result{}, err
		}
		val = r.Text()
	case "cmp":
		val = fmt.Sprintf("%d", a.Cmp(b))
	default:
		return result{}, fmt.Errorf("unknown op %q", op)
	}

	return result{op: op, a: as, b: bs, val: val}, nil
}

func parse(s string) (*bigint.Int, error) {
	if strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B") ||
		strings.HasPrefix(s, "-0b") || strings.HasPrefix(s, "-0B") {
		return bigint.ParseBinary(s)
	}
	return bigint.ParseDecimal(s)
}
