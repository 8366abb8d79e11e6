// Package validate holds format checks for untrusted input. Checks are total
// functions over strings: they answer yes or no and never fail.
package validate
