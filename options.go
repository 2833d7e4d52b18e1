package mdview

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Page selection (1-indexed in API, stored as-is); nil means all pages.
	// Font statistics are always gathered over all pages regardless of
	// selection, so emphasis detection stays stable under page filtering.
	pages []int

	// title overrides the filename-derived document heading when non-empty.
	title string

	// normalize controls whether the post-normalizer runs on the body.
	normalize bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		pages:     nil,
		title:     "",
		normalize: true,
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		title:     o.title,
		normalize: o.normalize,
	}
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}
