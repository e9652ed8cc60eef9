package chunkio

import (
	"fmt"

	"go.uber.org/zap"
)

// ContractLog receives a diagnostic record for every failed contract check
// before the violation panic is raised. It defaults to a nop logger; point it
// at a real logger to see violations in context with the rest of your logs.
var ContractLog = zap.NewNop()

// Ensure checks a precondition. It does nothing when cond holds, or in builds
// with Debug false, where cond is assumed to hold and args are never formatted.
// A failed check is fatal: it logs through ContractLog and panics with an
// Error wrapping ErrContract.
func Ensure(cond bool, format string, args ...interface{}) {
	if !Debug || cond {
		return
	}
	violate(fmt.Sprintf(format, args...))
}

func violate(detail string) {
	caller := GetCaller(2)
	ContractLog.Error("contract violation",
		zap.String("caller", caller),
		zap.String("detail", detail),
	)
	panic(NewError(ErrContract, detail, caller))
}
