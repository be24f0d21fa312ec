// Package errors provides the structured error type used across chunin-dm.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.InvalidArgumentf("dice spec %q: expected NdM", spec).
//	    WithMeta("spec", spec)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := phase.Run(ctx, run); err != nil {
//	    return errors.Wrapf(err, "phase %s", phase.Name())
//	}
//
// Checking:
//
//	if errors.IsInvalidArgument(err) {
//	    // bad table data or a malformed dice spec
//	}
//
// Gameplay failures (a missed check, a lost duel, a phase that does not
// pass) are never errors. Errors are reserved for defects: malformed dice
// specs, broken encounter tables, missing dependencies.
//
// Constructor validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
package errors
