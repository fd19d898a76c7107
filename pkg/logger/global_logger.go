package logger

var lg Logger

// InitLogger builds the process-wide logger from cfg. Call it once at
// startup, before anything logs.
func InitLogger(cfg Config) {
	lg = newLogger(cfg)
}

func Debug(name string, format string, args ...interface{}) {
	if lg != nil {
		lg.Debug(name, format, args...)
	}
}

func Info(name string, format string, args ...interface{}) {
	if lg != nil {
		lg.Info(name, format, args...)
	}
}

func Warn(name string, format string, args ...interface{}) {
	if lg != nil {
		lg.Warn(name, format, args...)
	}
}

func Error(name string, format string, args ...interface{}) {
	if lg != nil {
		lg.Error(name, format, args...)
	}
}

func Fatal(name string, format string, args ...interface{}) {
	if lg != nil {
		lg.Fatal(name, format, args...)
	}
}

func SetLevel(level string) {
	if lg != nil {
		lg.SetLevel(parseLevel(level))
	}
}

// Module is a name-bound view of the global logger. It resolves the global
// logger at call time, so it is safe to create before InitLogger runs.
type Module struct {
	name string
}

func Named(name string) *Module {
	return &Module{name: name}
}

func (m *Module) Debug(format string, args ...interface{}) { Debug(m.name, format, args...) }
func (m *Module) Info(format string, args ...interface{})  { Info(m.name, format, args...) }
func (m *Module) Warn(format string, args ...interface{})  { Warn(m.name, format, args...) }
func (m *Module) Error(format string, args ...interface{}) { Error(m.name, format, args...) }
func (m *Module) Fatal(format string, args ...interface{}) { Fatal(m.name, format, args...) }
