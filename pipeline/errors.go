package pipeline

import "errors"

// ErrRecoveryExhausted reports a JSON unit whose response still failed
// to parse, or still lacked a declared field, after both repair
// attempts. Substituting a partial field set is judged worse than
// stopping, so the run aborts.
var ErrRecoveryExhausted = errors.New("json recovery exhausted")
