// Package usecase contains application use cases.
package usecase

import (
	"github.com/luciuz/gh-seed/internal/domain"
)

// SyncOutput contains the result of one sync phase.
type SyncOutput struct {
	Phase   domain.Phase
	Created []string // Keys created remotely, in dispatch order
	Skipped []string // Keys that already existed remotely
	Planned []string // Dry-run command lines
}

// keySet builds a lookup set from remote keys. Matching is exact and
// case-sensitive.
func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func reporterOrNop(r domain.SyncReporter) domain.SyncReporter {
	if r == nil {
		return domain.NopReporter{}
	}
	return r
}

func loggerOrNop(l domain.Logger) domain.Logger {
	if l == nil {
		return domain.NopLogger{}
	}
	return l
}
