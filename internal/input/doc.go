// Package input provides interactive terminal input utilities.
//
// The generator asks exactly one question per run, so the package is small:
// a Prompter that reads answers line by line and the greeting Banner shown
// before the first question.
package input
