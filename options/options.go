// Package options holds the generic plumbing backends use for functional options.
package options

// NewStorageOption configures a storage backend of type T at construction time.
// Example:
// ```
//
//	type chunkSizeOpt struct{ size int64 }
//	func (o *chunkSizeOpt) Apply(s *Storage) {
//		s.options.ChunkSize = o.size
//	}
//	func (o *chunkSizeOpt) NewStorageOptionName() string {
//		return "chunkSize"
//	}
//
// ```
type NewStorageOption[T any] interface {
	Apply(*T)
	NewStorageOptionName() string
}

// ApplyOptions applies opts to s in order. Nil options are skipped.
func ApplyOptions[T any](s *T, opts ...NewStorageOption[T]) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Apply(s)
	}
}
