package common

// FileLifecycle receives progress events while an input is being hashed.
type FileLifecycle struct {
	OnStart func(size int64)
	OnChunk func(bytes int64)
	OnEnd   func()
}

// DefaultLifecycle is a no-op lifecycle.
var DefaultLifecycle = FileLifecycle{
	OnStart: func(size int64) {},
	OnChunk: func(bytes int64) {},
	OnEnd:   func() {},
}
