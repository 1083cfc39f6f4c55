package azboards

import (
	"go.uber.org/zap"

	"github.com/temirov/wiclone/internal/execshell"
	"github.com/temirov/wiclone/internal/ui"
	"github.com/temirov/wiclone/internal/workitems"
)

// ResolveTracker returns the provided tracker or constructs an Azure DevOps CLI-backed default.
//
// When human-readable logging is enabled the shell executor additionally
// mirrors each CLI invocation to the console.
func ResolveTracker(existing workitems.Tracker, logger *zap.Logger, humanReadableLogging bool, organization string) (workitems.Tracker, error) {
	if existing != nil {
		return existing, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	commandRunner := execshell.NewOSCommandRunner()

	var shellExecutor *execshell.ShellExecutor
	var creationError error
	if humanReadableLogging {
		shellExecutor, creationError = execshell.NewShellExecutorWithObserver(logger, commandRunner, ui.NewConsoleMirror(logger))
	} else {
		shellExecutor, creationError = execshell.NewShellExecutor(logger, commandRunner)
	}
	if creationError != nil {
		return nil, creationError
	}

	return NewClient(shellExecutor, ClientOptions{Organization: organization})
}
