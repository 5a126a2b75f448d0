// Package parser tokenises a single command line into a structured
// command.Request (spec §4.5): the first token selects the action via a
// fixed, case-insensitive table, and the remaining tokens become ordered
// string arguments.
package parser

import (
	"fmt"
	"strings"

	"github.com/cch137/kvdb/internal/command"
)

var actionTable = map[string]command.Action{
	"DEL":                command.ActionDel,
	"FLUSHALL":           command.ActionFlushAll,
	"INFO_DATASET_MEMORY": command.ActionInfoDatasetMemory,
	"GET":                command.ActionGet,
	"KEYS":               command.ActionKeys,
	"LLEN":               command.ActionLLen,
	"LPOP":               command.ActionLPop,
	"LPUSH":              command.ActionLPush,
	"LRANGE":             command.ActionLRange,
	"RENAME":             command.ActionRename,
	"RPOP":               command.ActionRPop,
	"RPUSH":              command.ActionRPush,
	"SAVE":               command.ActionSave,
	"SET":                command.ActionSet,
	"SHUTDOWN":           command.ActionShutdown,
	"ZADD":               command.ActionZAdd,
	"ZCARD":              command.ActionZCard,
	"ZCOUNT":             command.ActionZCount,
	"ZINTERSTORE":        command.ActionZInterStore,
	"ZRANGE":             command.ActionZRange,
	"ZRANGEBYSCORE":      command.ActionZRangeByScore,
	"ZRANK":              command.ActionZRank,
	"ZREM":               command.ActionZRem,
	"ZREMRANGEBYSCORE":   command.ActionZRemRangeByScore,
	"ZSCORE":             command.ActionZScore,
	"ZUNIONSTORE":        command.ActionZUnionStore,
}

// ParseError reports a malformed command line, pinned to the byte offset
// of the token that could not be lexed (for an unterminated quoted string,
// its opening quote).
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse command at byte %d: %s", e.Offset, e.Msg)
}

// Parse tokenises line into a Request. An unknown action is not itself an
// error: it yields a Request whose Action is command.ActionUnknown, which
// command.Execute turns into "ERR unknown command" (spec §4.5). Only a
// lexical defect — an unterminated quoted string — is a ParseError.
func Parse(line string) (command.Request, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return command.Request{}, err
	}

	if len(tokens) == 0 {
		return command.Request{Action: command.ActionUnknown}, nil
	}

	action, ok := actionTable[strings.ToUpper(tokens[0])]
	if !ok {
		action = command.ActionUnknown
	}

	args := make([]command.Arg, len(tokens)-1)
	for i, t := range tokens[1:] {
		args[i] = command.StringArg(t)
	}

	return command.Request{Action: action, Args: args}, nil
}

// tokenize splits line into bare words and double-quoted strings (spec
// §4.5). Whitespace between tokens collapses; trailing whitespace is
// permitted.
func tokenize(line string) ([]string, error) {
	var tokens []string

	i := 0
	n := len(line)

	for i < n {
		for i < n && isSpace(line[i]) {
			i++
		}

		if i >= n {
			break
		}

		if line[i] == '"' {
			tok, end, err := readQuoted(line, i)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, tok)
			i = end

			continue
		}

		start := i
		for i < n && !isSpace(line[i]) {
			i++
		}

		tokens = append(tokens, line[start:i])
	}

	return tokens, nil
}

// readQuoted reads a double-quoted string starting at line[start] == '"'.
// It returns the unescaped token content and the index just past the
// closing quote. \" is an escape for a literal quote; every other
// backslash is literal (spec §4.5).
func readQuoted(line string, start int) (string, int, error) {
	var b strings.Builder

	i := start + 1
	n := len(line)

	for i < n {
		c := line[i]

		if c == '"' {
			return b.String(), i + 1, nil
		}

		if c == '\\' && i+1 < n && line[i+1] == '"' {
			b.WriteByte('"')
			i += 2

			continue
		}

		b.WriteByte(c)
		i++
	}

	return "", 0, &ParseError{Offset: start, Msg: "unterminated quoted string"}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
