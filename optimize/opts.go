package optimize

type Option func(*optState)

// CombineText controls merging of adjacent text siblings. Default true.
func CombineText(v bool) Option {
	return func(os *optState) { os.combineText = v }
}

// CombineItalic controls merging of adjacent italic siblings. Default true.
func CombineItalic(v bool) Option {
	return func(os *optState) { os.combineItalic = v }
}

// CombineBold controls merging of adjacent bold siblings. Default true.
func CombineBold(v bool) Option {
	return func(os *optState) { os.combineBold = v }
}

// FlattenLink controls splicing of links nested under links. Default true.
func FlattenLink(v bool) Option {
	return func(os *optState) { os.flattenLink = v }
}

// FlattenItalic controls splicing of italics nested under italics. Default true.
func FlattenItalic(v bool) Option {
	return func(os *optState) { os.flattenItalic = v }
}

// FlattenBold controls splicing of bolds nested under bolds. Default true.
func FlattenBold(v bool) Option {
	return func(os *optState) { os.flattenBold = v }
}
