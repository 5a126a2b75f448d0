package command

// GET key
func execGet(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 1 {
		return wrongArguments()
	}

	value, found, err := ctx.Store.GetString(argString(req.Args[0]))
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	if !found {
		return nullReply()
	}

	return stringReply(value)
}

// SET key value
func execSet(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 2 {
		return wrongArguments()
	}

	ctx.Store.SetString(argString(req.Args[0]), argString(req.Args[1]))

	return boolReply(true)
}

// RENAME old new
func execRename(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 2 {
		return wrongArguments()
	}

	if err := ctx.Store.Rename(argString(req.Args[0]), argString(req.Args[1])); err != nil {
		return mapStoreErr(err)
	}

	return boolReply(true)
}

// DEL key [key ...]
func execDel(ctx *Context, req *Request) *Reply {
	if len(req.Args) < 1 {
		return wrongArguments()
	}

	keys := make([]string, len(req.Args))
	for i, a := range req.Args {
		keys[i] = argString(a)
	}

	return uintReply(uint64(ctx.Store.Delete(keys...)))
}
