// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

// Command mantapa is a small command-line harness over the mantapa
// library: one subcommand per façade operation, in the spirit of the
// standalone example programs a library ships to prove it runs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kannada-babel/mantapa"
)

func init() {
	if os.Getenv("MANTAPA_DEBUG") != "" {
		mantapa.Debug = os.Stderr
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	lib := mantapa.NewLibrary()

	var err error
	switch cmd {
	case "page":
		err = cmdPage(lib, args)
	case "search":
		err = cmdSearch(lib, args)
	case "search-random":
		err = cmdSearchRandom(lib, args)
	case "random":
		err = cmdRandom(lib, args)
	case "verify":
		err = cmdVerify(lib, args)
	case "next":
		err = cmdNext(lib, args)
	case "prev":
		err = cmdPrev(lib, args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "mantapa:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mantapa <page|search|search-random|random|verify|next|prev> [flags]")
	fmt.Fprintln(os.Stderr, "  page -addr <address>")
	fmt.Fprintln(os.Stderr, "  search -text <kannada text>")
	fmt.Fprintln(os.Stderr, "  search-random -text <kannada text>")
	fmt.Fprintln(os.Stderr, "  random")
	fmt.Fprintln(os.Stderr, "  verify -addr <address> -text <prefix>")
	fmt.Fprintln(os.Stderr, "  next -addr <address>")
	fmt.Fprintln(os.Stderr, "  prev -addr <address>")
}

func cmdPage(lib *mantapa.Library, args []string) error {
	fs := flag.NewFlagSet("page", flag.ExitOnError)
	addr := fs.String("addr", "0", "address (hex, hierarchical, or Kannada text)")
	fs.Parse(args)

	loc, err := lib.ParseAddress(*addr)
	if err != nil {
		return err
	}
	printPage(lib.PageOf(loc))
	return nil
}

func cmdSearch(lib *mantapa.Library, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	text := fs.String("text", "", "Kannada text to locate at the start of a page")
	fs.Parse(args)

	loc, ok := lib.SearchForPrefix(*text)
	if !ok {
		return fmt.Errorf("%q does not segment into the alphabet", *text)
	}
	printLocation(loc)
	return nil
}

func cmdSearchRandom(lib *mantapa.Library, args []string) error {
	fs := flag.NewFlagSet("search-random", flag.ExitOnError)
	text := fs.String("text", "", "Kannada text to locate at a random position on a page")
	fs.Parse(args)

	loc, ok := lib.SearchAtRandomPosition(*text)
	if !ok {
		return fmt.Errorf("%q is empty, unsegmentable, or too long for a page", *text)
	}
	printPage(lib.PageOf(loc))
	return nil
}

func cmdRandom(lib *mantapa.Library, args []string) error {
	printPage(lib.RandomPage())
	return nil
}

func cmdVerify(lib *mantapa.Library, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	addr := fs.String("addr", "0", "address to check")
	text := fs.String("text", "", "expected prefix")
	fs.Parse(args)

	loc, err := lib.ParseAddress(*addr)
	if err != nil {
		return err
	}
	fmt.Println(lib.Verify(loc, *text))
	return nil
}

func cmdNext(lib *mantapa.Library, args []string) error {
	fs := flag.NewFlagSet("next", flag.ExitOnError)
	addr := fs.String("addr", "0", "address")
	fs.Parse(args)

	loc, err := lib.ParseAddress(*addr)
	if err != nil {
		return err
	}
	printPage(lib.NextPage(loc))
	return nil
}

func cmdPrev(lib *mantapa.Library, args []string) error {
	fs := flag.NewFlagSet("prev", flag.ExitOnError)
	addr := fs.String("addr", "0", "address")
	fs.Parse(args)

	loc, err := lib.ParseAddress(*addr)
	if err != nil {
		return err
	}
	page, ok := lib.PreviousPage(loc)
	if !ok {
		return fmt.Errorf("%s is the first page, there is no previous page", loc.Hex())
	}
	printPage(page)
	return nil
}

func printLocation(loc mantapa.Location) {
	h := loc.Hierarchical
	fmt.Printf("hex: %s\n", loc.Hex())
	fmt.Printf("hierarchical: %s\n", loc.Display())
	fmt.Printf("  mandira=%s gode=%d patti=%d pustaka=%d puta=%d\n",
		h.Mandira, h.Gode, h.Patti, h.Pustaka, h.Puta)
}

func printPage(page mantapa.Page) {
	printLocation(page.Location)
	fmt.Println("---")
	fmt.Println(page.FormattedContent)
}
