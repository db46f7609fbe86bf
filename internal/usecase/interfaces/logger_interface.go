package interfaces

// ILogger is the structured logging capability injected into use cases.
// *zap.SugaredLogger satisfies it.
type ILogger interface {
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}
