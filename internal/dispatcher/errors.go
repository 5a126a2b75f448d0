package dispatcher

import "errors"

// ErrShutdown is returned by Submit when the dispatcher stopped before the
// submitted request reached the front of the queue (spec §4.9: database
// is closed).
var ErrShutdown = errors.New(errDatabaseClosedMsg)

const errDatabaseClosedMsg = "ERR database is closed"
