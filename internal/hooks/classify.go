package hooks

import "slices"

// DefaultExitCodes is the policy used when a hook has no override:
// 0 succeeds, 1 aborts, nothing warns.
var DefaultExitCodes = ExitCodes{
	Success: []int{0},
	Abort:   []int{1},
	Warn:    []int{},
}

// EffectivePolicy merges a hook's override onto DefaultExitCodes. Each
// non-nil override list replaces the default list for that field.
func EffectivePolicy(override *ExitCodes) ExitCodes {
	policy := ExitCodes{
		Success: slices.Clone(DefaultExitCodes.Success),
		Abort:   slices.Clone(DefaultExitCodes.Abort),
		Warn:    slices.Clone(DefaultExitCodes.Warn),
	}
	if override == nil {
		return policy
	}
	if override.Success != nil {
		policy.Success = slices.Clone(override.Success)
	}
	if override.Abort != nil {
		policy.Abort = slices.Clone(override.Abort)
	}
	if override.Warn != nil {
		policy.Warn = slices.Clone(override.Warn)
	}
	return policy
}

// Classify maps an exit code to an outcome under the merged policy.
//
// A nil exit code (killed by a signal, including timeouts) always aborts.
// Lists are checked success, then warn, then abort, so a code listed in
// both success and abort succeeds. Codes listed nowhere abort.
func Classify(exitCode *int, override *ExitCodes) Outcome {
	if exitCode == nil {
		return OutcomeAbort
	}

	policy := EffectivePolicy(override)
	code := *exitCode

	switch {
	case slices.Contains(policy.Success, code):
		return OutcomeSuccess
	case slices.Contains(policy.Warn, code):
		return OutcomeWarn
	case slices.Contains(policy.Abort, code):
		return OutcomeAbort
	default:
		return OutcomeAbort
	}
}
