package assets

var (
	MergeJSON  = mergeJSON
	CacheBust  = cacheBust
	InsideRoot = insideRoot
)
