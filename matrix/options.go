package matrix

// Option configures a newly constructed Dense's numeric policy.
type Option func(*Options)

// Options holds Dense's numeric validation policy. Fields are unexported;
// public code only ever sees it through Option.
type Options struct {
	validateNaNInf    bool
	allowInfDistances bool
}

// Numeric policy defaults — single source of truth, mirroring the
// teacher's documented defaults.
const (
	// DefaultValidateNaNInf: Set rejects NaN/Inf unless relaxed below.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances: +Inf is rejected by default even when
	// validation is on; APSP/ITL matrices opt in explicitly via
	// WithAllowInfDistances, since +Inf there is a semantic "no path"
	// sentinel, not dirty data.
	DefaultAllowInfDistances = false
)

func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf, allowInfDistances: DefaultAllowInfDistances}
}

// WithNoValidateNaNInf disables NaN/Inf validation entirely. Prefer
// WithAllowInfDistances for the common "APSP with +Inf sentinels" case;
// this option is for callers that also need -Inf or NaN to pass through.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInfDistances permits +Inf entries (only +Inf — NaN and -Inf
// remain rejected) to represent "no path" in distance matrices. This is
// the option package itl uses when building the shortest-path matrix.
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}
