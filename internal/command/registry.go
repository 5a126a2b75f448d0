package command

import "github.com/cch137/kvdb/internal/store"

// Context is the environment an executor runs in: the dataset plus the
// side-effecting operations (SAVE, SHUTDOWN) that live outside the store
// itself (spec §4.4).
type Context struct {
	Store *store.Store

	// Save persists the current dataset and reports any I/O failure
	// (spec §4.7, §9 Open Question 1: failures must surface, never a
	// false Bool(true)).
	Save func() error

	// RequestShutdown signals the dispatcher to stop after the current
	// request completes (spec §4.4 SHUTDOWN).
	RequestShutdown func()
}

// Executor validates a request's arguments against the store and returns
// a populated reply. No executor panics on a contract error (spec §4.4,
// §7); those surface as an Error reply instead.
type Executor func(ctx *Context, req *Request) *Reply

var registry = map[Action]Executor{
	ActionDel:               execDel,
	ActionFlushAll:          execFlushAll,
	ActionInfoDatasetMemory: execInfoDatasetMemory,
	ActionGet:               execGet,
	ActionKeys:              execKeys,
	ActionLLen:              execLLen,
	ActionLPop:              execLPop,
	ActionLPush:             execLPush,
	ActionLRange:            execLRange,
	ActionRename:            execRename,
	ActionRPop:              execRPop,
	ActionRPush:             execRPush,
	ActionSave:              execSave,
	ActionSet:               execSet,
	ActionShutdown:          execShutdown,
	ActionZAdd:              execZAdd,
	ActionZCard:             execZCard,
	ActionZCount:            execZCount,
	ActionZInterStore:       execZInterStore,
	ActionZRange:            execZRange,
	ActionZRangeByScore:     execZRangeByScore,
	ActionZRank:             execZRank,
	ActionZRem:              execZRem,
	ActionZRemRangeByScore:  execZRemRangeByScore,
	ActionZScore:            execZScore,
	ActionZUnionStore:       execZUnionStore,
}

// Execute looks up req.Action in the registry and runs it. An unknown
// action (including the parser's ActionUnknown) yields the
// "ERR unknown command" reply (spec §4.5).
func Execute(ctx *Context, req *Request) *Reply {
	exec, ok := registry[req.Action]
	if !ok {
		return errorReply(errUnknownCommand)
	}

	return exec(ctx, req)
}
