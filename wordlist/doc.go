// Package wordlist provides named sets of candidate words used to compose
// strings and email addresses.
package wordlist
