// Package exec runs the external tools a generated site needs.
//
// It knows nothing about npm, bower or bundler. Callers describe an
// invocation as a Command, wrap it in a Runner with a name and a
// description, and keep runners in a Registry so they can be listed before
// they are run:
//
//	cmd, _ := exec.ParseCommand("bundle install")
//	e := exec.NewExecutor(&exec.Options{Dir: root})
//	err := cmd.Run(ctx, e)
//
// Runners receive their Executor when they run rather than when they are
// built, so output streams and the working directory can change per run.
//
// Installers run concurrently and share a terminal, so PrefixWriter labels
// each line with the tool it came from. WaitWithSpinner animates a spinner
// while background work finishes and output is suppressed.
package exec
