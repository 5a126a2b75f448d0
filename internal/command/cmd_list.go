package command

// LPUSH key value [value ...]
func execLPush(ctx *Context, req *Request) *Reply {
	return pushList(ctx, req, ctx.Store.PushLeft)
}

// RPUSH key value [value ...]
func execRPush(ctx *Context, req *Request) *Reply {
	return pushList(ctx, req, ctx.Store.PushRight)
}

func pushList(ctx *Context, req *Request, push func(key string, values ...string) error) *Reply {
	if len(req.Args) < 2 {
		return wrongArguments()
	}

	key := argString(req.Args[0])

	values := make([]string, len(req.Args)-1)
	for i, a := range req.Args[1:] {
		values[i] = argString(a)
	}

	if err := push(key, values...); err != nil {
		return mapStoreErr(err)
	}

	length, err := ctx.Store.ListLen(key)
	if err != nil {
		return mapStoreErr(err)
	}

	return uintReply(uint64(length))
}

// LPOP key [count]
func execLPop(ctx *Context, req *Request) *Reply {
	return popList(req, ctx.Store.PopLeft)
}

// RPOP key [count]
func execRPop(ctx *Context, req *Request) *Reply {
	return popList(req, ctx.Store.PopRight)
}

func popList(req *Request, pop func(key string, count int) ([]string, bool, error)) *Reply {
	if len(req.Args) < 1 || len(req.Args) > 2 {
		return wrongArguments()
	}

	count := 1

	if len(req.Args) == 2 {
		n, ok := argToUint(req.Args[1])
		if !ok {
			return wrongArguments()
		}

		count = int(n)
	}

	values, found, err := pop(argString(req.Args[0]), count)
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	if !found {
		return nullReply()
	}

	return listReply(values)
}

// LLEN key
func execLLen(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 1 {
		return wrongArguments()
	}

	length, err := ctx.Store.ListLen(argString(req.Args[0]))
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return uintReply(uint64(length))
}

// LRANGE key start stop
//
// Negative indices are explicitly rejected (spec §9 Open Question 2):
// this implementation treats them as a malformed argument rather than
// leaving the unsigned-arithmetic behavior undefined.
func execLRange(ctx *Context, req *Request) *Reply {
	if len(req.Args) != 3 {
		return wrongArguments()
	}

	start, ok := argToInt(req.Args[1])
	if !ok || start < 0 {
		return wrongArguments()
	}

	stop, ok := argToInt(req.Args[2])
	if !ok || stop < 0 {
		return wrongArguments()
	}

	values, err := ctx.Store.ListRange(argString(req.Args[0]), int(start), int(stop))
	if reply := mapStoreErr(err); reply != nil {
		return reply
	}

	return listReply(values)
}
