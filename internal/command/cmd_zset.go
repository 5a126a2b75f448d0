package command

import (
	"strings"

	"github.com/cch137/kvdb/internal/store"
)

// ZADD key score member
func execZAdd(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 3 {
		return wrongArguments()
	}

	score, ok := argToFloat(req.Args[1])
	if !ok {
		return wrongArguments()
	}

	if err := ctx.Store.ZAdd(argString(req.Args[0]), argString(req.Args[2]), score); err != nil {
		return mapStoreErr(err)
	}

	return boolReply(true)
}

// ZSCORE key member
func execZScore(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 2 {
		return wrongArguments()
	}

	score, found, err := ctx.Store.ZScore(argString(req.Args[0]), argString(req.Args[1]))
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	if !found {
		return nullReply()
	}

	return doubleReply(score)
}

// ZCARD key
func execZCard(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 1 {
		return wrongArguments()
	}

	card, err := ctx.Store.ZCard(argString(req.Args[0]))
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return uintReply(uint64(card))
}

// ZCOUNT key min min_inclusive max max_inclusive
func execZCount(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 5 {
		return wrongArguments()
	}

	min, max, minIncl, maxIncl, ok := parseScoreRangeArgs(req.Args[1:])
	if !ok {
		return wrongArguments()
	}

	count, err := ctx.Store.ZCount(argString(req.Args[0]), min, max, minIncl, maxIncl)
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return uintReply(uint64(count))
}

// ZRANGE key start stop [with_scores]
func execZRange(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 3 && len(req.Args) != 4 {
		return wrongArguments()
	}

	start, ok := argToInt(req.Args[1])
	if !ok {
		return wrongArguments()
	}

	stop, ok := argToInt(req.Args[2])
	if !ok {
		return wrongArguments()
	}

	withScores := false
	if len(req.Args) == 4 {
		withScores, ok = argToBool(req.Args[3])
		if !ok {
			return wrongArguments()
		}
	}

	members, err := ctx.Store.ZRange(argString(req.Args[0]), int(start), int(stop))
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return membersReply(members, withScores)
}

// ZRANGEBYSCORE key min min_inclusive max max_inclusive [with_scores]
func execZRangeByScore(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 5 && len(req.Args) != 6 {
		return wrongArguments()
	}

	min, max, minIncl, maxIncl, ok := parseScoreRangeArgs(req.Args[1:5])
	if !ok {
		return wrongArguments()
	}

	withScores := false
	if len(req.Args) == 6 {
		withScores, ok = argToBool(req.Args[5])
		if !ok {
			return wrongArguments()
		}
	}

	members, err := ctx.Store.ZRangeByScore(argString(req.Args[0]), min, max, minIncl, maxIncl)
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return membersReply(members, withScores)
}

// ZRANK key member [reverse]
func execZRank(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 2 && len(req.Args) != 3 {
		return wrongArguments()
	}

	reverse := false

	if len(req.Args) == 3 {
		var ok bool

		reverse, ok = argToBool(req.Args[2])
		if !ok {
			return wrongArguments()
		}
	}

	rank, err := ctx.Store.ZRank(argString(req.Args[0]), argString(req.Args[1]), reverse)
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	if rank < 0 {
		return nullReply()
	}

	return uintReply(uint64(rank))
}

// ZREM key member
func execZRem(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 2 {
		return wrongArguments()
	}

	_, err := ctx.Store.ZRem(argString(req.Args[0]), argString(req.Args[1]))
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return boolReply(true)
}

// ZREMRANGEBYSCORE key min min_inclusive max max_inclusive
func execZRemRangeByScore(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 5 {
		return wrongArguments()
	}

	min, max, minIncl, maxIncl, ok := parseScoreRangeArgs(req.Args[1:])
	if !ok {
		return wrongArguments()
	}

	count, err := ctx.Store.ZRemRangeByScore(argString(req.Args[0]), min, max, minIncl, maxIncl)
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return uintReply(uint64(count))
}

// ZINTERSTORE dest numkeys key [key ...] [WEIGHTS w [w ...]] [AGGREGATE SUM|MIN|MAX]
func execZInterStore(ctx *Context, req *Request) *Reply {
	return execZStore(ctx, req, true)
}

// ZUNIONSTORE dest numkeys key [key ...] [WEIGHTS w [w ...]] [AGGREGATE SUM|MIN|MAX]
func execZUnionStore(ctx *Context, req *Request) *Reply {
	return execZStore(ctx, req, false)
}

func execZStore(ctx *Context, req *Request, inter bool) *Reply {
	if len(req.Args) < 2 {
		return wrongArguments()
	}

	dest := argString(req.Args[0])

	numKeys, ok := argToUint(req.Args[1])
	if !ok || numKeys == 0 || uint64(len(req.Args)) < 2+numKeys {
		return wrongArguments()
	}

	keys := make([]string, numKeys)
	for i := range keys {
		keys[i] = argString(req.Args[2+uint64(i)])
	}

	rest := req.Args[2+numKeys:]

	var weights []float64

	agg := store.AggregateSum

	i := 0
	for i < len(rest) {
		switch strings.ToUpper(argString(rest[i])) {
		case "WEIGHTS":
			i++

			weights = make([]float64, numKeys)

			for j := range weights {
				if i >= len(rest) {
					return wrongArguments()
				}

				w, ok := argToFloat(rest[i])
				if !ok {
					return wrongArguments()
				}

				weights[j] = w
				i++
			}
		case "AGGREGATE":
			i++

			if i >= len(rest) {
				return wrongArguments()
			}

			switch strings.ToUpper(argString(rest[i])) {
			case "SUM":
				agg = store.AggregateSum
			case "MIN":
				agg = store.AggregateMin
			case "MAX":
				agg = store.AggregateMax
			default:
				return wrongArguments()
			}

			i++
		default:
			return wrongArguments()
		}
	}

	card, err := ctx.Store.ZStore(dest, keys, weights, agg, inter)
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return uintReply(uint64(card))
}

// parseScoreRangeArgs reads (min, min_inclusive, max, max_inclusive) from a
// 4-element arg slice.
func parseScoreRangeArgs(args []Arg) (min, max float64, minIncl, maxIncl bool, ok bool) {
	if len(args) != 4 {
		return 0, 0, false, false, false
	}

	min, ok = argToFloat(args[0])
	if !ok {
		return
	}

	minIncl, ok = argToBool(args[1])
	if !ok {
		return
	}

	max, ok = argToFloat(args[2])
	if !ok {
		return
	}

	maxIncl, ok = argToBool(args[3])

	return
}

func membersReply(members []store.Member, withScores bool) *Reply {
	out := make([]string, 0, len(members)*2)

	for _, m := range members {
		out = append(out, m.Member)

		if withScores {
			out = append(out, formatScore(m.Score))
		}
	}

	return listReply(out)
}
