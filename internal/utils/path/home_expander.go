package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander rewrites leading tilde shortcuts to absolute home directory paths.
// The home directory lookup runs once and its outcome is reused across calls.
type HomeExpander struct {
	lookupHomeDirectory HomeDirectoryProvider
	lookupOnce          sync.Once
	cachedHomeDirectory string
	cachedLookupError   error
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}

	return &HomeExpander{lookupHomeDirectory: provider}
}

// Expand resolves leading tilde prefixes to the user's home directory.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || len(candidatePath) == 0 {
		return candidatePath
	}
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	homeDirectory := expander.homeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == tildeSymbolConstant {
		return homeDirectory
	}

	for _, separatorPrefix := range tildePrefixVariants() {
		if strings.HasPrefix(candidatePath, separatorPrefix) {
			return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, separatorPrefix))
		}
	}

	return candidatePath
}

func tildePrefixVariants() []string {
	if tildeWithPathSeparatorPrefix == tildeForwardSlashPrefixConstant {
		return []string{tildeForwardSlashPrefixConstant}
	}

	return []string{tildeForwardSlashPrefixConstant, tildeWithPathSeparatorPrefix}
}

func (expander *HomeExpander) homeDirectory() string {
	expander.lookupOnce.Do(func() {
		expander.cachedHomeDirectory, expander.cachedLookupError = expander.lookupHomeDirectory()
	})
	if expander.cachedLookupError != nil {
		return ""
	}

	return expander.cachedHomeDirectory
}
