package execshell

// InvocationObserver mirrors tracker CLI invocations to an auxiliary sink such as the console.
type InvocationObserver interface {
	// InvocationStarted fires before the executor hands the command to its runner.
	InvocationStarted(command ShellCommand)
	// InvocationCompleted fires once the runner returns a result, regardless of exit code.
	InvocationCompleted(command ShellCommand, result ExecutionResult)
	// InvocationFailed fires when the command never produced a result at all.
	InvocationFailed(command ShellCommand, failure error)
}

// silentInvocationObserver stands in when callers do not supply an observer.
type silentInvocationObserver struct{}

func (silentInvocationObserver) InvocationStarted(ShellCommand) {}

func (silentInvocationObserver) InvocationCompleted(ShellCommand, ExecutionResult) {}

func (silentInvocationObserver) InvocationFailed(ShellCommand, error) {}
