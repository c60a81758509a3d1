// Package errors provides the structured error type used across dexboard.
//
// Every layer returns *Error values carrying a Code, a user-facing message,
// the wrapped cause, and optional metadata. The codes map one-to-one onto
// gRPC status codes so the dashboard handler can convert without guessing.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("creature not found")
//	err := errors.InvalidArgumentf("invalid stage: %d", stage)
//
// Adding metadata:
//
//	err := errors.NotFound("creature not found").
//	    WithMeta("creature_id", id)
//
// Wrapping errors keeps the original code:
//
//	if err := repo.Load(ctx); err != nil {
//	    return errors.Wrap(err, "failed to load records")
//	}
//
// # Domain Mapping
//
// The dashboard core reports four kinds of trouble:
//   - Data unavailable (missing file, unreadable file, missing column): Unavailable
//   - Lookup miss (an id that does not resolve in the record store): NotFound
//   - Coercion failure: not an error value; recorded per field by the records repository
//   - No-op event: not an error; the event is dropped
//
// None of them stop the process. The worst outcome is a degraded view that
// says what is missing.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
//	page, err := h.dashboard.View(ctx, &dashboard.ViewInput{ID: id})
//	if err != nil {
//	    return nil, errors.ToGRPCError(err)
//	}
package errors
