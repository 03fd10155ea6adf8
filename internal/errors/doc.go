// Package errors provides structured error handling for the intrigue-api project.
//
// Errors carry a Code, a human-readable Message, optional metadata, and an
// optional wrapped cause. Codes map onto gRPC status codes and HTTP statuses.
//
// Creating errors:
//
//	err := errors.NotFound("game not found")
//	err := errors.InvalidArgumentf("invalid cell: %d", cell)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load game")
//	}
//
// Checking errors:
//
//	if errors.IsPermissionDenied(err) {
//	    // not this player's turn
//	}
//
// Game-rule violations use FailedPrecondition; turn races surface as Aborted;
// corrupted persisted state uses InvariantViolation, which is logged and
// surfaced to callers as a generic internal failure without detail.
//
// Validation errors accumulate per-field messages:
//
//	vb := errors.NewValidationBuilder()
//	if input.Name == "" {
//	    vb.RequiredField("Name")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
