// SPDX-License-Identifier: MIT

// Command immapctl is a small demo and benchmark driver for immap, in the
// spirit of this corpus's own ad hoc HAMT exercise tools: no flags, a
// handful of os.Args subcommands, panic-on-error plumbing.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"

	"github.com/nwca/immap"
)

// runOptions governs the "bench" subcommand and is validated the same way
// this corpus validates its own config/option structs.
type runOptions struct {
	Size int `validate:"required,min=1"`
}

var validate = validator.New()

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: immapctl bench <size> | snapshot <path>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "bench":
		bench()
	case "snapshot":
		snapshot()
	default:
		fmt.Println("usage: immapctl bench <size> | snapshot <path>")
		os.Exit(1)
	}
}

func bench() {
	size := 10000
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		check(err)
		size = n
	}
	opts := runOptions{Size: size}
	check(validate.Struct(opts))

	m := immap.NewComparable[int, int]()
	for i := 0; i < opts.Size; i++ {
		m = m.With(i, i*i)
	}
	hits := 0
	for i := 0; i < opts.Size; i++ {
		if _, ok := m.Get(i); ok {
			hits++
		}
	}
	for i := 0; i < opts.Size; i += 2 {
		m = m.Without(i)
	}

	printf("inserted %s entries, %s lookups hit, %s remain after deleting evens\n",
		humanize.Comma(int64(opts.Size)), humanize.Comma(int64(hits)), humanize.Comma(int64(m.Len())))
}

func snapshot() {
	if len(os.Args) < 3 {
		fmt.Println("usage: immapctl snapshot <path>")
		os.Exit(1)
	}
	path := os.Args[2]

	m := immap.NewComparable[string, string]()
	m = m.With("alpha", "1").With("beta", "2").With("gamma", "3")

	data, err := m.MarshalCBOR()
	check(err)
	check(os.WriteFile(path, data, 0o644))

	c, err := m.CID()
	check(err)
	printf("wrote %s bytes to %s, cid %s\n", humanize.Bytes(uint64(len(data))), path, c)
}

func printf(format string, args ...any) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("\033[32m"+format+"\033[0m", args...)
		return
	}
	fmt.Printf(format, args...)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
