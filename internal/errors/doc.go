// Package errors provides structured errors for combat-companion.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form metadata. Codes map onto HTTP status codes so the web handlers can
// translate any error returned by an orchestrator without type switches.
//
// # Basic Usage
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
//	if err := store.Set(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save character")
//	}
//
// # Error Kinds
//
// Failures talking to an upstream service are tagged with a kind so callers can
// tell a character-service failure from a generation failure without caring
// about the exact code:
//
//	err := errors.FetchFailed(cause, errors.CodeUnavailable, "character service unreachable")
//	if errors.IsFetchError(err) {
//	    // show "Failed to fetch: ..." to the user
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("character.name", sheet.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # HTTP
//
//	status, body := errors.ToHTTP(err)
//	c.JSON(status, body)
package errors
