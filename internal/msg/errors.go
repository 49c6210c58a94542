package msg

// artifact publishing
const (
	// FailedToPublish indicates a single upload failure
	FailedToPublish = "failed to publish %s"
	// FolderNotFound indicates the batch folder does not exist
	FolderNotFound = "folder %s not found"
	// FolderIsFile indicates the caller confused a file with a folder
	FolderIsFile = "%s is a file, not a folder"
	// RescanFailed indicates the post-publish rescan did not go through
	RescanFailed = "artifacts published but rescan failed: %v"
)

// artifact fetching
const (
	// FailedToFetch indicates a download failure
	FailedToFetch = "failed to fetch %s/%s"
)
