// Package producer generates synthetic values for fixtures and seed data.
//
// A Generator binds the parameters of one generator kind (numbers, picks from
// a set, identifiers, sequences, word strings, emails, hex colors, samples of
// a set or a caller-supplied function) to a resolved configuration. Running
// it produces values one index at a time, passes each candidate through the
// post-processing pipeline (map hook, compare hook, duplicate rejection,
// observer callbacks) and retries rejected indexes until the retry limit
// relaxes the policy.
//
// A Blueprint maps field names to literals or generators; Compose runs every
// generator once and transposes the columns into rows.
package producer
