// Package intake exposes the form submission endpoints and orchestrates the
// pipeline behind them: decode, validate, notify, audit, respond.
//
// Every request resolves to a {"success":bool,"message":string} JSON body.
// Validation failures answer 400 with the exact message from the validator;
// notification failures answer 500 with a generic message that never carries
// the underlying transport error; persistence failures are absorbed and
// logged without changing the outcome already decided by validation and
// notification.
package intake
