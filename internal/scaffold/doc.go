// Package scaffold generates a starter descriptor from a short interactive
// questionnaire.
package scaffold
