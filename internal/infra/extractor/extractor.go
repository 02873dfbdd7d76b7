package extractor

import "github.com/rojanmagar2001/goimgdl/internal/extract"

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Extract(text string) []string {
	return extract.ImageURLs(text)
}
