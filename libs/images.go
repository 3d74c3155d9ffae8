package libs

import (
	"strings"
)

// StaticImages serves product images from the local static directory.
type StaticImages struct {
	Prefix string
	Ext    string
}

func NewStaticImages(prefix string) StaticImages {
	return StaticImages{Prefix: strings.TrimSuffix(prefix, "/"), Ext: ".jpg"}
}

func (s StaticImages) URL(name string) string {
	if name == "" {
		return ""
	}
	return s.Prefix + "/" + name + s.Ext
}
