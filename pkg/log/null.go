package log

// NullLogger discards everything. Useful for tests, where log output
// would only add noise.
var NullLogger = nullLogger{}

type nullLogger struct{}

func (n nullLogger) Debugf(format string, args ...interface{}) {}
func (n nullLogger) Infof(format string, args ...interface{})  {}
func (n nullLogger) Warnf(format string, args ...interface{})  {}
func (n nullLogger) Errorf(format string, args ...interface{}) {}
func (n nullLogger) Fatal(args ...interface{})                 {}
