package command

// KEYS pattern
func execKeys(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 1 {
		return wrongArguments()
	}

	return listReply(ctx.Store.Keys(argString(req.Args[0])))
}
