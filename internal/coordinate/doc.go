/*
Package coordinate provides a structured, type-safe representation of the
dependency coordinates declared in a build descriptor, based on the canonical
Maven notation `group:artifact:version[:classifier]`.

The pair `group:artifact` identifies a library; two declarations with the same
key and different versions are a conflict the validator reports.
*/
package coordinate
