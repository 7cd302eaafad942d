package domain

import "github.com/mohae/deepcopy"

// Document is a free-form JSON object. Agent configurations, template
// defaults and execution payloads are all opaque key-value documents;
// only the specific sub-fields a runner reads are ever validated.
type Document map[string]any

// Copy returns a deep copy of the document. Mutating the copy never
// affects the original, which matters when an agent is instantiated
// from a template's default configuration.
func (d Document) Copy() Document {
	if d == nil {
		return Document{}
	}
	return deepcopy.Copy(d).(Document)
}
