// kvdb-seed populates a fresh store with synthetic strings, lists, and
// sorted sets, then writes it out as a snapshot file — useful as fixture
// data for kvdb-bench or manual REPL exploration.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/cch137/kvdb/internal/persist"
	"github.com/cch137/kvdb/internal/store"
)

func main() {
	flagSet := flag.NewFlagSet("kvdb-seed", flag.ContinueOnError)

	count := flagSet.Int("count", 10000, "number of keys to generate per value type")
	out := flagSet.String("out", "db.json", "path to write the snapshot file")
	seed := flagSet.Uint32("hash-seed", 1, "hash table seed")

	flagSet.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: kvdb-seed [flags]\n\n")
		fmt.Fprint(os.Stderr, "Generates a snapshot file with synthetic strings, lists, and sorted sets.\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if err := run(*count, *out, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(count int, outPath string, seed uint32) error {
	s := store.New(seed)

	start := time.Now()

	for i := 0; i < count; i++ {
		s.SetString("string:"+strconv.Itoa(i), "value-"+strconv.Itoa(i))
	}

	for i := 0; i < count; i++ {
		key := "list:" + strconv.Itoa(i)
		for j := 0; j < 5; j++ {
			_ = s.PushRight(key, "item-"+strconv.Itoa(j))
		}
	}

	for i := 0; i < count; i++ {
		key := "zset:" + strconv.Itoa(i)
		for j := 0; j < 5; j++ {
			_ = s.ZAdd(key, "member-"+strconv.Itoa(j), float64(j))
		}
	}

	if err := persist.Save(outPath, s); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	fmt.Printf("wrote %d keys per type to %s in %v\n", count, outPath, time.Since(start).Round(time.Millisecond))

	return nil
}
