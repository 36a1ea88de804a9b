// Package utils holds small helpers shared by the converter internals: a
// wall-clock [Timer] for the conversion duration metric and [ParseBool] for
// lenient boolean configuration values.
package utils
