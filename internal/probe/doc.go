// Package probe provides the small, independently failing sources the
// info column is built from: environment variables, the system clock
// and the quote generator.
//
// Every probe answers with (value, ok). A probe never returns an error
// to its caller; any failure simply means ok is false.
//
//	env := probe.OSEnv{}
//	if user, ok := env.Lookup("USER"); ok {
//	    fmt.Println("Hello,", user)
//	}
//
//	clock := probe.NewClock(shell.NewExecRunner(), "timedatectl", nil)
//	if ts, ok := clock.Now(ctx); ok {
//	    fmt.Print("It is ", ts)
//	}
package probe
