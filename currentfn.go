package actlog

import (
	"runtime"
	"strings"
)

const unknownFunction = "unknown"

// CurrentFn returns the name of the calling function without package
// path. If the caller cannot be determined it returns "unknown". It
// exists so activity names can be derived from an explicit call site
// rather than inferred by the wrapper:
//
//	a := formatter.Activity(actlog.CurrentFn())
//	defer a.End(a.Start())
func CurrentFn() string {
	return functionNameFromCaller(2)
}

func functionNameFromCaller(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return unknownFunction
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownFunction
	}
	return trimFunctionName(fn.Name())
}

func trimFunctionName(name string) string {
	if name == "" {
		return unknownFunction
	}
	// Remove package path and package prefix.
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownFunction
	}
	return name
}
