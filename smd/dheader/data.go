package dheader

type (
	Header struct {
		Version int  `json:"version"`
		Present bool `json:"present"`
	}
)

const (
	SectionName    = "version"
	DefaultVersion = 1
)
