package command

// Byte-exact error reply texts (spec §6). These strings are part of the
// wire contract; never reword them.
const (
	errWrongArguments = "ERR wrong arguments"
	errWrongType      = "WRONGTYPE Operation against a key holding the wrong kind of value"
	errNoSuchKey      = "ERR no such key"
	errUnknownCommand = "ERR unknown command"
)
