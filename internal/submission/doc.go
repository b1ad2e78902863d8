// Package submission defines the four kinds of form submissions the intake
// service accepts and their validation rules.
//
// Field names on the payload structs mirror the public form contract, so the
// JSON tags are authoritative even where they look unusual (the journal
// listing form really does post "acessingType").
package submission
