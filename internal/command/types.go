// Package command defines the request/reply protocol (spec §3, §6) and the
// registry of executors that run requests against a store.Store (spec
// §4.4).
package command

// Action identifies which command a Request invokes.
type Action int

const (
	ActionUnknown Action = iota
	ActionDel
	ActionFlushAll
	ActionInfoDatasetMemory
	ActionGet
	ActionKeys
	ActionLLen
	ActionLPop
	ActionLPush
	ActionLRange
	ActionRename
	ActionRPop
	ActionRPush
	ActionSave
	ActionSet
	ActionShutdown
	ActionZAdd
	ActionZCard
	ActionZCount
	ActionZInterStore
	ActionZRange
	ActionZRangeByScore
	ActionZRank
	ActionZRem
	ActionZRemRangeByScore
	ActionZScore
	ActionZUnionStore
)

// ArgTag identifies the type of an argument value.
type ArgTag int

const (
	ArgString ArgTag = iota
	ArgUInt
	ArgInt
)

// Arg is one ordered, tagged request argument (spec §3).
type Arg struct {
	Tag  ArgTag
	Str  string
	UInt uint64
	Int  int64
}

func StringArg(s string) Arg { return Arg{Tag: ArgString, Str: s} }
func UIntArg(v uint64) Arg   { return Arg{Tag: ArgUInt, UInt: v} }
func IntArg(v int64) Arg     { return Arg{Tag: ArgInt, Int: v} }

// Request is an action plus its ordered argument list (spec §3).
type Request struct {
	Action Action
	Args   []Arg
}

// ReplyTag identifies the shape of a Reply's payload (spec §3, §6).
type ReplyTag int

const (
	ReplyNull ReplyTag = iota
	ReplyError
	ReplyString
	ReplyList
	ReplyUInt
	ReplyInt
	ReplyBool
	ReplyDouble
)

// Reply carries an executor's result back to the caller (spec §3, §6).
type Reply struct {
	OK      bool
	Tag     ReplyTag
	Str     string
	List    []string
	UInt    uint64
	Int     int64
	Bool    bool
	Double  float64
	ErrText string
}

func nullReply() *Reply          { return &Reply{OK: true, Tag: ReplyNull} }
func stringReply(s string) *Reply { return &Reply{OK: true, Tag: ReplyString, Str: s} }
func listReply(l []string) *Reply {
	if l == nil {
		l = []string{}
	}

	return &Reply{OK: true, Tag: ReplyList, List: l}
}
func uintReply(v uint64) *Reply     { return &Reply{OK: true, Tag: ReplyUInt, UInt: v} }
func intReply(v int64) *Reply       { return &Reply{OK: true, Tag: ReplyInt, Int: v} }
func boolReply(v bool) *Reply       { return &Reply{OK: true, Tag: ReplyBool, Bool: v} }
func doubleReply(v float64) *Reply  { return &Reply{OK: true, Tag: ReplyDouble, Double: v} }
func errorReply(msg string) *Reply  { return &Reply{OK: false, Tag: ReplyError, ErrText: msg} }
