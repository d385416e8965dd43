package core

// Logger interface for raytracer diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}
