// Package logger is the logging surface of the store and the demo command.
// Drivers live in the std, zap and logrus subpackages.
package logger

// Logger takes fmt.Sprint style arguments, such as a message followed by a storage key.
type Logger interface {
	Info(...any)
	Debug(...any)
	Error(...any)
}
