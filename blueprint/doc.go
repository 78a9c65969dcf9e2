// Package blueprint turns declarative field descriptions into a
// producer.Blueprint. Fields are given as NAME:type:options rules on the
// command line or as entries of a YAML blueprint file.
package blueprint
