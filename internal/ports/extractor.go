package ports

type Extractor interface {
	Extract(text string) []string
}
