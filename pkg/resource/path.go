package resource

import (
	"strings"

	docerrors "github.com/jdziat/docdb-go/pkg/errors"
)

// Info identifies the resource a REST path addresses.
type Info struct {
	ResourceType string
	ResourceID   string
	// Feed is true when the path named a feed rather than a single item.
	Feed bool
}

// ParsePath derives the resource type and id from a REST path.
//
// With an odd number of segments the path names a feed: the type is the
// last segment and the id is everything before it. With an even number it
// names an item: the type is the second-to-last segment and the id is the
// whole path. One trailing slash is ignored.
func ParsePath(path string) (Info, error) {
	invalid := docerrors.NewValidationError(docerrors.KindInvalidResourcePath, "path", path)

	trimmed := strings.TrimSuffix(path, "/")
	if trimmed == "" || !strings.HasPrefix(trimmed, "/") {
		return Info{}, invalid
	}

	segments := strings.Split(trimmed[1:], "/")
	for _, s := range segments {
		if s == "" {
			return Info{}, invalid
		}
	}

	n := len(segments)
	if n%2 == 1 {
		info := Info{ResourceType: segments[n-1], Feed: true}
		if n > 1 {
			info.ResourceID = trimmed[:strings.LastIndex(trimmed, "/")]
		}
		return info, nil
	}

	return Info{
		ResourceType: segments[n-2],
		ResourceID:   trimmed,
	}, nil
}
