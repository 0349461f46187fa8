package service

// Logger is the narrow logging interface the service accepts. Library
// code below this facade never calls a global logger directly.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}
