package xerrors

import "fmt"

// CleanUp is defer-able syntactic sugar that calls f and reports an
// error, if any, to *err. Pass the caller's named return error. Typical
// use is closing a graph file written by one of the DIMACS/MTX/edge-list
// writers:
//
//	func writeDimacs(path string, g *graph.Undirected) (err error) {
//	  f, err := os.Create(path)
//	  if err != nil { ... }
//	  defer xerrors.CleanUp(f.Close, &err)
//	  ...
//	}
//
// If the caller returns with its own error, any error from CleanUp is
// chained onto it.
func CleanUp(cleanUp func() error, dst *error) {
	addErr(cleanUp(), dst)
}

func addErr(err2 error, dst *error) {
	if err2 == nil {
		return
	}
	if *dst == nil {
		*dst = err2
		return
	}
	*dst = E(*dst, fmt.Sprintf("second error in Close: %v", err2))
}
