package command

import (
	"strconv"

	"github.com/cch137/kvdb/internal/store"
)

// argString returns the arg's value as a string; every arg tag coerces
// cleanly to a string (spec §4.4 treats this conversion as always safe).
func argString(a Arg) string {
	switch a.Tag {
	case ArgUInt:
		return strconv.FormatUint(a.UInt, 10)
	case ArgInt:
		return strconv.FormatInt(a.Int, 10)
	default:
		return a.Str
	}
}

// argToUint coerces a to a uint64, converting a numeric-looking string if
// necessary (spec §4.4's arg_string_to_uint). ok is false if the argument
// cannot be interpreted as a non-negative integer.
func argToUint(a Arg) (uint64, bool) {
	switch a.Tag {
	case ArgUInt:
		return a.UInt, true
	case ArgInt:
		if a.Int < 0 {
			return 0, false
		}

		return uint64(a.Int), true
	default:
		v, err := strconv.ParseUint(a.Str, 10, 64)
		if err != nil {
			return 0, false
		}

		return v, true
	}
}

// argToInt coerces a to an int64, converting a numeric-looking string if
// necessary.
func argToInt(a Arg) (int64, bool) {
	switch a.Tag {
	case ArgUInt:
		return int64(a.UInt), true
	case ArgInt:
		return a.Int, true
	default:
		v, err := strconv.ParseInt(a.Str, 10, 64)
		if err != nil {
			return 0, false
		}

		return v, true
	}
}

// argToFloat coerces a to a float64 (used for ZSET scores, which the wire
// protocol carries as strings per §6's example command lines).
func argToFloat(a Arg) (float64, bool) {
	switch a.Tag {
	case ArgUInt:
		return float64(a.UInt), true
	case ArgInt:
		return float64(a.Int), true
	default:
		v, err := strconv.ParseFloat(a.Str, 64)
		if err != nil {
			return 0, false
		}

		return v, true
	}
}

// argToBool coerces a to a bool; only the bare words "true", "TRUE",
// "True" and "false", "FALSE", "False" are accepted (other mixed-case
// spellings are rejected), matching the spec §8 example command lines
// (`ZCOUNT 1 true 5 true`).
func argToBool(a Arg) (bool, bool) {
	s := argString(a)

	switch s {
	case "true", "TRUE", "True":
		return true, true
	case "false", "FALSE", "False":
		return false, true
	default:
		return false, false
	}
}

// formatScore renders a sorted-set score for a List reply's WITHSCORES
// elements (spec §4.2: ZRANGE/ZRANGEBYSCORE "with_scores" flatten scores
// into the same reply list alongside members).
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}

// wrongArguments is the reply for arity/type-coercion failures (spec §6).
func wrongArguments() *Reply {
	return errorReply(errWrongArguments)
}

// mapStoreErr translates a store-layer error into its byte-exact reply, or
// nil if err is nil.
func mapStoreErr(err error) *Reply {
	switch err {
	case nil:
		return nil
	case store.ErrWrongType:
		return errorReply(errWrongType)
	case store.ErrNoSuchKey:
		return errorReply(errNoSuchKey)
	default:
		return errorReply("ERR " + err.Error())
	}
}
