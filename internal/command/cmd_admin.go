package command

// FLUSHALL
func execFlushAll(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 0 {
		return wrongArguments()
	}

	ctx.Store.Flush()

	return boolReply(true)
}

// INFO_DATASET_MEMORY
func execInfoDatasetMemory(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 0 {
		return wrongArguments()
	}

	return uintReply(uint64(ctx.Store.MemoryBytes()))
}

// SAVE
//
// An I/O failure surfaces as an Error reply rather than a false Bool(true)
// (spec §9 Open Question 1).
func execSave(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 0 {
		return wrongArguments()
	}

	if err := ctx.Save(); err != nil {
		return errorReply("ERR " + err.Error())
	}

	return boolReply(true)
}

// SHUTDOWN triggers a final SAVE before stopping the worker (spec §4.4). A
// failed save still stops the worker: shutdown is unconditional once
// requested, but the failure is reported rather than swallowed.
func execShutdown(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 0 {
		return wrongArguments()
	}

	err := ctx.Save()

	ctx.RequestShutdown()

	if err != nil {
		return errorReply("ERR " + err.Error())
	}

	return boolReply(true)
}
