// kvdb is an interactive REPL front end for the in-memory key-value store.
//
// Usage:
//
//	kvdb [--hash-seed N] [--persistence-filepath path]
//
// On startup the snapshot file (default db.json) is loaded if present.
// Every line typed is tokenised into a command and submitted to the single
// dispatcher worker; the reply is printed. SAVE and SHUTDOWN persist the
// dataset; SHUTDOWN also exits the REPL.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/cch137/kvdb/internal/command"
	"github.com/cch137/kvdb/internal/config"
	"github.com/cch137/kvdb/internal/dispatcher"
	"github.com/cch137/kvdb/internal/parser"
	"github.com/cch137/kvdb/internal/persist"
	"github.com/cch137/kvdb/internal/store"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, _, err := config.Parse("kvdb", args[1:])
	if err != nil {
		return err
	}

	cfg = cfg.Resolve()

	s := store.New(cfg.HashSeed)

	if err := persist.Load(cfg.PersistenceFilepath, s); err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading %s: %v\n", cfg.PersistenceFilepath, err)
	}

	shutdown := make(chan struct{})

	ctx := &command.Context{
		Store: s,
		Save: func() error {
			return persist.Save(cfg.PersistenceFilepath, s)
		},
		RequestShutdown: func() {
			select {
			case <-shutdown:
			default:
				close(shutdown)
			}
		},
	}

	d := dispatcher.New(ctx)
	defer d.Shutdown()

	repl := &repl{dispatcher: d, shutdown: shutdown}

	return repl.run()
}

type repl struct {
	dispatcher *dispatcher.Dispatcher
	shutdown   chan struct{}
	liner      *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".kvdb_history")
}

func (r *repl) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Println("kvdb - in-memory key-value store")
	fmt.Println("Type a command (SET, GET, LPUSH, ZADD, ...) or SHUTDOWN to exit.")
	fmt.Println()

	for {
		select {
		case <-r.shutdown:
			r.saveHistory()
			return nil
		default:
		}

		line, err := r.liner.Prompt("kvdb> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				r.saveHistory()

				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		r.execute(line)

		select {
		case <-r.shutdown:
			r.saveHistory()
			return nil
		default:
		}
	}
}

func (r *repl) execute(line string) {
	req, err := parser.Parse(line)
	if err != nil {
		fmt.Printf("(error) %v\n", err)
		return
	}

	reply, err := r.dispatcher.Submit(context.Background(), &req)
	if err != nil {
		fmt.Printf("(error) %v\n", err)
		return
	}

	printReply(reply)
}

func printReply(reply *command.Reply) {
	if !reply.OK {
		fmt.Printf("(error) %s\n", reply.ErrText)
		return
	}

	switch reply.Tag {
	case command.ReplyNull:
		fmt.Println("(nil)")
	case command.ReplyString:
		fmt.Printf("%q\n", reply.Str)
	case command.ReplyList:
		if len(reply.List) == 0 {
			fmt.Println("(empty list)")
			return
		}

		for i, v := range reply.List {
			fmt.Printf("%d) %q\n", i+1, v)
		}
	case command.ReplyUInt:
		fmt.Printf("(integer) %d\n", reply.UInt)
	case command.ReplyInt:
		fmt.Printf("(integer) %d\n", reply.Int)
	case command.ReplyBool:
		fmt.Printf("(boolean) %v\n", reply.Bool)
	case command.ReplyDouble:
		fmt.Printf("(double) %g\n", reply.Double)
	}
}

func (r *repl) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *repl) completer(line string) []string {
	commands := []string{
		"DEL", "FLUSHALL", "INFO_DATASET_MEMORY", "GET", "KEYS", "LLEN", "LPOP",
		"LPUSH", "LRANGE", "RENAME", "RPOP", "RPUSH", "SAVE", "SET", "SHUTDOWN",
		"ZADD", "ZCARD", "ZCOUNT", "ZINTERSTORE", "ZRANGE", "ZRANGEBYSCORE",
		"ZRANK", "ZREM", "ZREMRANGEBYSCORE", "ZSCORE", "ZUNIONSTORE",
	}

	var completions []string

	upper := strings.ToUpper(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, upper) {
			completions = append(completions, cmd)
		}
	}

	return completions
}
